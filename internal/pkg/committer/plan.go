package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// Precondition is evaluated inside the read-write transaction before the
// plan's mutations are buffered. Returning an error aborts the commit.
// Used for optimistic version checks on rows the plan is about to update.
type Precondition func(ctx context.Context, tx *spanner.ReadWriteTransaction) error

// Plan collects the mutations and preconditions of one unit of work.
// Everything in a plan commits atomically or not at all.
type Plan struct {
	mutations []*spanner.Mutation
	preconds  []Precondition
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// Require attaches a precondition to the plan.
func (p *Plan) Require(pc Precondition) {
	if pc == nil {
		return
	}
	p.preconds = append(p.preconds, pc)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

func (p *Plan) Preconditions() []Precondition {
	return p.preconds
}
