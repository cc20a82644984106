package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "aegis/contexts/identity-access/resource-access-service/application"
	"aegis/contexts/identity-access/resource-access-service/domain/entities"
	domainerrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
	"aegis/contexts/identity-access/resource-access-service/domain/services"
	"aegis/contexts/identity-access/resource-access-service/ports"
)

// AccessResourceQuery is the request model for the protected-resource workflow.
// UserID carries the identity already verified by the authentication gate;
// the use case trusts it and never re-authenticates.
type AccessResourceQuery struct {
	UserID     string
	ResourceID string
}

// AccessResourceUseCase orchestrates user lookup, resource lookup and domain
// predicate evaluation into a single access decision.
type AccessResourceUseCase struct {
	Users       ports.UserRepository
	Resources   ports.ResourceRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute resolves the principal, optionally the requested resource, and
// applies the domain predicates. Failures come back as taxonomy sentinels.
func (u AccessResourceUseCase) Execute(ctx context.Context, query AccessResourceQuery) (entities.AccessDecision, error) {
	if strings.TrimSpace(query.UserID) == "" {
		return entities.AccessDecision{}, domainerrors.ErrInvalidRequest
	}

	logger := application.ResolveLogger(u.Logger)
	logger.Debug("access check started",
		"event", "access_check_started",
		"module", "identity-access/resource-access-service",
		"layer", "application",
		"user_id", query.UserID,
		"resource_id", query.ResourceID,
	)

	user, err := u.Users.GetUser(ctx, strings.TrimSpace(query.UserID))
	if err != nil {
		return entities.AccessDecision{}, err
	}

	// Principal predicate first: an inactive account is denied before the
	// resource repository is ever consulted.
	if !services.GrantsAccess(user, nil) {
		logger.Warn("access denied for inactive user",
			"event", "access_denied_inactive",
			"module", "identity-access/resource-access-service",
			"layer", "application",
			"user_id", query.UserID,
		)
		return entities.AccessDecision{}, domainerrors.ErrAccessDenied
	}

	message := "Access granted"
	var resourceSummary *entities.ResourceSummary
	if strings.TrimSpace(query.ResourceID) != "" {
		resource, err := u.Resources.GetResource(ctx, strings.TrimSpace(query.ResourceID))
		if err != nil {
			return entities.AccessDecision{}, err
		}
		if !services.GrantsAccess(user, &resource) {
			logger.Warn("access denied by resource rule",
				"event", "access_denied_resource",
				"module", "identity-access/resource-access-service",
				"layer", "application",
				"user_id", query.UserID,
				"resource_id", resource.ID,
			)
			return entities.AccessDecision{}, domainerrors.ErrAccessDenied
		}
		summary := resource.Summary()
		resourceSummary = &summary
		message = "Access granted to resource: " + resource.Name
	}

	decisionID, err := u.newID(ctx)
	if err != nil {
		return entities.AccessDecision{}, err
	}

	logger.Debug("access granted",
		"event", "access_granted",
		"module", "identity-access/resource-access-service",
		"layer", "application",
		"user_id", query.UserID,
		"resource_id", query.ResourceID,
		"decision_id", decisionID,
	)
	return entities.AccessDecision{
		DecisionID: decisionID,
		Message:    message,
		User:       user.Summary(),
		Resource:   resourceSummary,
		GrantedAt:  u.now(),
	}, nil
}

func (u AccessResourceUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (u AccessResourceUseCase) newID(ctx context.Context) (string, error) {
	if u.IDGenerator == nil {
		return "", domainerrors.ErrInvalidRequest
	}
	return u.IDGenerator.NewID(ctx)
}
