package resourceaccess

import (
	"log/slog"
	"time"

	httpadapter "aegis/contexts/identity-access/resource-access-service/adapters/http"
	"aegis/contexts/identity-access/resource-access-service/adapters/memory"
	"aegis/contexts/identity-access/resource-access-service/application/commands"
	"aegis/contexts/identity-access/resource-access-service/application/queries"
	"aegis/contexts/identity-access/resource-access-service/ports"
)

// Module is the resource-access-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users          ports.UserRepository
	Resources      ports.ResourceRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// NewModule wires the access use-cases and transport handler using explicit
// ports.
func NewModule(deps Dependencies) Module {
	access := queries.AccessResourceUseCase{
		Users:       deps.Users,
		Resources:   deps.Resources,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	listOwned := queries.ListOwnedResourcesUseCase{
		Users:     deps.Users,
		Resources: deps.Resources,
		Logger:    deps.Logger,
	}
	registerResource := commands.RegisterResourceUseCase{
		Users:          deps.Users,
		Resources:      deps.Resources,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}

	handler := httpadapter.Handler{
		Access:           access,
		ListOwned:        listOwned,
		RegisterResource: registerResource,
		Logger:           deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with the seeded
// in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:          store,
		Resources:      store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
