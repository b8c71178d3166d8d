package toast

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying n.
func NewContext(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, contextKey{}, n)
}

// FromContext returns the notifier stored in ctx. It panics with
// ErrNoProvider when there is none.
func FromContext(ctx context.Context) Notifier {
	n, ok := ctx.Value(contextKey{}).(Notifier)
	if !ok || n == nil {
		panic(ErrNoProvider)
	}
	return n
}
