package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/pkg/committer"
)

// ProductRepo is the write-side repository interface for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product (or nil if none).
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation that updates the product according to its
	// ChangeTracker (or nil). The mutation bumps the row version; pair it with
	// VersionCheck so stale aggregates cannot overwrite concurrent changes.
	UpdateMut(p *domain.Product) *spanner.Mutation

	// VersionCheck returns a plan precondition that fails with
	// domain.ErrVersionConflict when the persisted row version no longer
	// matches the version the aggregate was loaded with.
	VersionCheck(productID string, expected int64) committer.Precondition
}
