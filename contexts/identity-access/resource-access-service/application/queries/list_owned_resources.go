package queries

import (
	"context"
	"log/slog"
	"strings"

	application "aegis/contexts/identity-access/resource-access-service/application"
	"aegis/contexts/identity-access/resource-access-service/domain/entities"
	domainerrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
	"aegis/contexts/identity-access/resource-access-service/ports"
)

// ListOwnedResourcesUseCase returns the resources owned by the caller.
type ListOwnedResourcesUseCase struct {
	Users     ports.UserRepository
	Resources ports.ResourceRepository
	Logger    *slog.Logger
}

func (u ListOwnedResourcesUseCase) Execute(ctx context.Context, userID string) ([]entities.Resource, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	user, err := u.Users.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	if !user.CanAccessProtectedResources() {
		return nil, domainerrors.ErrAccessDenied
	}

	items, err := u.Resources.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	application.ResolveLogger(u.Logger).Debug("owned resources listed",
		"event", "owned_resources_listed",
		"module", "identity-access/resource-access-service",
		"layer", "application",
		"user_id", user.ID,
		"count", len(items),
	)
	return items, nil
}
