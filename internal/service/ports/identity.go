package ports

import (
	"context"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// IdentityProvider resolves the operator behind a bearer token. A transient
// failure here is what the session cache exists for.
type IdentityProvider interface {
	CurrentActor(ctx context.Context, token string) (*domain.Actor, error)
}
