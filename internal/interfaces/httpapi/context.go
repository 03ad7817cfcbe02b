package httpapi

import (
	"context"

	"github.com/riskibarqy/cricket-team/internal/domain/admin"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p admin.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// principalFromContext is only populated behind RequireAdmin.
func principalFromContext(ctx context.Context) (admin.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(admin.Principal)
	return p, ok
}
