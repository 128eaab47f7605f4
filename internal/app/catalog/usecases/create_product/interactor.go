package create_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

// Request is the application-level create-product request.
// Price is a decimal string; Currency defaults to ALL when empty.
type Request struct {
	ProductType string
	Name        string
	Description string
	Price       string
	Currency    string
	PhotoURL    string
	Variant     shared.VariantInput
}

// Interactor implements the create-product usecase.
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

// Execute validates the input, enforces name uniqueness within the variant and
// persists the new product. The unique index on (product_type, name) is the
// authoritative guard; the read-model check exists to fail fast.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	name, err := domain.NewProductName(req.Name)
	if err != nil {
		return "", err
	}

	price, err := domain.NewMoneyFromDecimal(req.Price, req.Currency)
	if err != nil {
		return "", err
	}

	details, err := shared.BuildDetails(req.ProductType, req.Variant)
	if err != nil {
		return "", err
	}

	exists, err := it.ReadModel.ExistsByNameAndType(ctx, name.String(), req.ProductType)
	if err != nil {
		return "", err
	}
	if exists {
		return "", &domain.DuplicateProductNameError{Name: name.String(), ProductType: details.ProductType()}
	}

	id := uuid.New().String()
	product, err := buildProduct(id, name, req.Description, price, req.PhotoURL, details, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		// Two requests can pass the read-model check concurrently; the index
		// rejects the loser.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return "", &domain.DuplicateProductNameError{Name: name.String(), ProductType: details.ProductType()}
		}
		return "", err
	}

	return product.ID(), nil
}

func buildProduct(id string, name domain.ProductName, description string, price *domain.Money, photoURL string, details domain.VariantDetails, now time.Time) (*domain.Product, error) {
	switch d := details.(type) {
	case domain.AromaBombelDetails:
		return domain.NewAromaBombelProduct(id, name, description, price, photoURL, d, now)
	case domain.AromaBottleDetails:
		return domain.NewAromaBottleProduct(id, name, description, price, photoURL, d, now)
	case domain.AromaDeviceDetails:
		return domain.NewAromaDeviceProduct(id, name, description, price, photoURL, d, now)
	case domain.SanitizingDeviceDetails:
		return domain.NewSanitizingDeviceProduct(id, name, description, price, photoURL, d, now)
	case domain.BatteryDetails:
		return domain.NewBatteryProduct(id, name, description, price, photoURL, d, now)
	}
	return nil, domain.ErrUnknownProductType
}
