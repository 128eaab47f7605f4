package remove_stock

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

type Request struct {
	ProductID string
	Quantity  int64
	Reason    string
	ActorID   string
}

// Result reports the stock level after the removal.
type Result struct {
	NewQuantity int64
}

// Interactor implements the remove-stock usecase. The insufficient-stock check
// runs against the freshly loaded quantity and is re-evaluated on version
// conflicts, so concurrent removals cannot drive the quantity negative.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	HistoryRepo contracts.StockHistoryRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, historyRepo contracts.StockHistoryRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		HistoryRepo: historyRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (Result, error) {
	var res Result
	err := shared.RetryOnConflict(ctx, func(ctx context.Context) error {
		now := it.Clock.Now()

		productDTO, err := it.ReadModel.GetProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		product, err := shared.BuildAggregate(productDTO)
		if err != nil {
			return err
		}

		newQuantity, err := product.RemoveStock(req.Quantity, now)
		if err != nil {
			return err
		}

		entry, err := domain.NewStockRemoval(uuid.New().String(), product.ID(), req.Quantity, newQuantity, req.Reason, req.ActorID, now)
		if err != nil {
			return err
		}

		plan := commitplan.NewPlan()
		plan.Require(it.ProductRepo.VersionCheck(product.ID(), product.Version()))
		plan.Add(it.ProductRepo.UpdateMut(product))
		plan.Add(it.HistoryRepo.InsertMut(entry))

		if err := it.Committer.Apply(ctx, plan); err != nil {
			return err
		}

		res.NewQuantity = newQuantity
		return nil
	})
	return res, err
}
