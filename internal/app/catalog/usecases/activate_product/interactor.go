package activate_product

import (
	"context"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

type Request struct {
	ProductID string
}

// Interactor restores a soft-deleted product to the live catalog.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	return shared.RetryOnConflict(ctx, func(ctx context.Context) error {
		now := it.Clock.Now()

		productDTO, err := it.ReadModel.GetProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		product, err := shared.BuildAggregate(productDTO)
		if err != nil {
			return err
		}

		if err := product.Activate(now); err != nil {
			return err
		}

		plan := commitplan.NewPlan()
		plan.Require(it.ProductRepo.VersionCheck(product.ID(), product.Version()))
		plan.Add(it.ProductRepo.UpdateMut(product))

		return it.Committer.Apply(ctx, plan)
	})
}
