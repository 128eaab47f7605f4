package shared

import (
	"context"
	"errors"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
)

// MaxConflictRetries bounds reload-and-reapply attempts after an optimistic
// version check failed. The conflict is surfaced to the caller once exhausted.
const MaxConflictRetries = 3

// RetryOnConflict runs fn, reloading and reapplying on ErrVersionConflict.
// Any other outcome is returned immediately.
func RetryOnConflict(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < MaxConflictRetries; attempt++ {
		err = fn(ctx)
		if !errors.Is(err, domain.ErrVersionConflict) {
			return err
		}
	}
	return err
}
