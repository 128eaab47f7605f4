package contracts

import (
	"context"

	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically, after evaluating the
// plan's preconditions inside the same transaction. Keeping this as a small
// interface lets usecase tests swap in an in-memory implementation.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
