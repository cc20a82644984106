package ports

import (
	"context"
	"time"

	"aegis/contexts/identity-access/resource-access-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts ID issuance for decisions and registered resources.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// UserRepository is the read boundary over the identity store. Lookups are
// side-effect-free; a missing principal is ErrUserNotFound, never a crash.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
}

// ResourceRepository is the read/registration boundary over the resource
// catalog. A missing resource is ErrResourceNotFound.
type ResourceRepository interface {
	GetResource(ctx context.Context, resourceID string) (entities.Resource, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Resource, error)
	CreateResource(ctx context.Context, resource entities.Resource) error
}

// IdempotencyRecord stores request hash and previous response payload.
type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

// IdempotencyStore guarantees replay/conflict behavior for mutating endpoints.
type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}
