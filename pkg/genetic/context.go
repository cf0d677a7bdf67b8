package genetic

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying g. The optimizer passes such a
// context to fitness callbacks and generation hooks.
func NewContext(ctx context.Context, g *GA) context.Context {
	return context.WithValue(ctx, contextKey{}, g)
}

// FromContext returns the optimizer running the current callback, if any.
func FromContext(ctx context.Context) (*GA, bool) {
	g, ok := ctx.Value(contextKey{}).(*GA)
	return g, ok
}
