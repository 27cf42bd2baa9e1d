package middleware

import (
	"context"

	"github.com/siddhivinayaka18/afh-crm/internal/scope"
)

type contextKey string

const ContextIdentity contextKey = "identity"

func WithIdentity(ctx context.Context, ident scope.Identity) context.Context {
	return context.WithValue(ctx, ContextIdentity, ident)
}

func GetIdentity(ctx context.Context) (scope.Identity, bool) {
	ident, ok := ctx.Value(ContextIdentity).(scope.Identity)
	return ident, ok
}
