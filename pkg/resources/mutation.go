package resources

import (
	"context"
	"sync/atomic"

	"github.com/aussiebroadwan/kickoff/pkg/slogx"
)

// Mutation wraps a write. Its cache effects run only after the action
// succeeds; a failed action leaves the cache untouched. Auth.Logout is the
// exception and clears the cache whatever the outcome.
type Mutation[I, O any] struct {
	name      string
	action    func(ctx context.Context, in I) (O, error)
	onSuccess func(ctx context.Context, in I, out O)

	pending atomic.Int32
}

func newMutation[I, O any](
	name string,
	action func(ctx context.Context, in I) (O, error),
	onSuccess func(ctx context.Context, in I, out O),
) *Mutation[I, O] {
	return &Mutation[I, O]{name: name, action: action, onSuccess: onSuccess}
}

// Mutate runs the action and, on success, its declared cache effects.
func (m *Mutation[I, O]) Mutate(ctx context.Context, in I) (O, error) {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	out, err := m.action(ctx, in)
	if err != nil {
		slogx.FromContext(ctx).Debug("mutation failed", "mutation", m.name, "error", err)
		var zero O
		return zero, err
	}

	if m.onSuccess != nil {
		m.onSuccess(ctx, in, out)
	}
	return out, nil
}

// IsPending reports whether at least one Mutate call is in progress.
func (m *Mutation[I, O]) IsPending() bool {
	return m.pending.Load() > 0
}

// Name identifies the mutation in logs.
func (m *Mutation[I, O]) Name() string { return m.name }

// None is the input or output of mutations that carry nothing.
type None struct{}

// noOutput adapts an action returning only an error.
func noOutput[I any](fn func(ctx context.Context, in I) error) func(ctx context.Context, in I) (None, error) {
	return func(ctx context.Context, in I) (None, error) {
		return None{}, fn(ctx, in)
	}
}
