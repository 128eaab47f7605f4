package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil) // nil mutations are dropped
	assert.True(t, p.IsEmpty())

	p.Add(spanner.Delete("products", spanner.Key{"x"}))
	assert.False(t, p.IsEmpty())
	assert.Len(t, p.Mutations(), 1)

	p.Require(func(ctx context.Context, tx *spanner.ReadWriteTransaction) error { return nil })
	assert.Len(t, p.Preconditions(), 1)
}
