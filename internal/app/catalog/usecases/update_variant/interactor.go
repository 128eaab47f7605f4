package update_variant

import (
	"context"
	"time"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

// Request replaces the variant-specific attributes of a product. The variant
// category itself is fixed at creation and cannot change.
type Request struct {
	ProductID string
	Variant   shared.VariantInput
}

// Interactor implements the update-variant-details usecase.
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

		details, err := shared.BuildDetails(string(product.Type()), req.Variant)
		if err != nil {
			return err
		}

		if err := applyDetails(product, details, now); err != nil {
			return err
		}

		plan := commitplan.NewPlan()
		plan.Require(it.ProductRepo.VersionCheck(product.ID(), product.Version()))
		plan.Add(it.ProductRepo.UpdateMut(product))

		return it.Committer.Apply(ctx, plan)
	})
}

func applyDetails(product *domain.Product, details domain.VariantDetails, now time.Time) error {
	switch d := details.(type) {
	case domain.AromaBombelDetails:
		return product.UpdateAromaBombelDetails(d, now)
	case domain.AromaBottleDetails:
		return product.UpdateAromaBottleDetails(d, now)
	case domain.AromaDeviceDetails:
		return product.UpdateAromaDeviceDetails(d, now)
	case domain.SanitizingDeviceDetails:
		return product.UpdateSanitizingDeviceDetails(d, now)
	case domain.BatteryDetails:
		return product.UpdateBatteryDetails(d, now)
	}
	return domain.ErrUnknownProductType
}
