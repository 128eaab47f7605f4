package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Adapter applies plans against a Spanner client. All preconditions run inside
// the same read-write transaction as the buffered mutations, so a version
// check sees the row state that the commit will be serialized against.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		for _, pc := range plan.Preconditions() {
			if err := pc(ctx, tx); err != nil {
				return err
			}
		}
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
