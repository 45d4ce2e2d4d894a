package provider

import "context"

type ctxKey struct{}

// NewContext attaches a provider to the context. Request middleware uses
// this to put the session's shared engine in scope for handlers.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the provider in scope. Unlike every engine operation,
// a missing provider is NOT tolerated: it means a consumer was wired up
// outside a provider scope, which must surface immediately during
// development rather than silently defaulting.
func FromContext(ctx context.Context) *Provider {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok {
		panic("checklist provider: no provider in context; consumer used outside a provider scope")
	}
	return p
}
