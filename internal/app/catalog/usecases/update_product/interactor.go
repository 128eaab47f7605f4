package update_product

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

// Request carries the full replacement set for a product's shared fields.
// Price is a decimal string; Currency defaults to ALL when empty.
type Request struct {
	ProductID   string
	Name        string
	Description string
	Price       string
	Currency    string
	PhotoURL    string
}

// Interactor implements the update-product usecase. Only the shared fields
// change here; stock and variant attributes have their own operations.
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

		name, err := domain.NewProductName(req.Name)
		if err != nil {
			return err
		}

		price, err := domain.NewMoneyFromDecimal(req.Price, req.Currency)
		if err != nil {
			return err
		}

		productDTO, err := it.ReadModel.GetProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		product, err := shared.BuildAggregate(productDTO)
		if err != nil {
			return err
		}

		renamed := !product.Name().Equals(name)
		if renamed {
			exists, err := it.ReadModel.ExistsByNameAndType(ctx, name.String(), string(product.Type()))
			if err != nil {
				return err
			}
			if exists {
				return &domain.DuplicateProductNameError{Name: name.String(), ProductType: product.Type()}
			}
		}

		if err := product.UpdateBasicInfo(name, req.Description, price, req.PhotoURL, now); err != nil {
			return err
		}
		if !product.Changes().HasChanges() {
			return nil
		}

		plan := commitplan.NewPlan()
		plan.Require(it.ProductRepo.VersionCheck(product.ID(), product.Version()))
		plan.Add(it.ProductRepo.UpdateMut(product))

		if err := it.Committer.Apply(ctx, plan); err != nil {
			// A concurrent create or rename can take the name between the
			// read-model check and the commit; the unique index rejects it.
			if renamed && spanner.ErrCode(err) == codes.AlreadyExists {
				return &domain.DuplicateProductNameError{Name: name.String(), ProductType: product.Type()}
			}
			return err
		}
		return nil
	})
}
