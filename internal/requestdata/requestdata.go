package requestdata

import (
	"context"

	"github.com/google/uuid"
)

var principalKey = struct{}{}

// Principal is the authenticated identity attached to a request. IsAdmin
// is always the recomputed value, never the raw token claim.
type Principal struct {
	UserID  uuid.UUID
	Email   string
	Name    string
	Image   string
	IsAdmin bool
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func GetPrincipal(ctx context.Context) *Principal {
	val := ctx.Value(principalKey)
	if p, ok := val.(*Principal); ok {
		return p
	}
	return nil
}
