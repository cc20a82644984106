package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "aegis/contexts/identity-access/resource-access-service/application"
	"aegis/contexts/identity-access/resource-access-service/domain/entities"
	domainerrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
	"aegis/contexts/identity-access/resource-access-service/ports"
)

// RegisterResourceCommand contains transport-agnostic input for catalog
// registration. CallerID is the staff principal performing the registration.
type RegisterResourceCommand struct {
	IdempotencyKey string
	CallerID       string
	Name           string
	Description    string
	OwnerID        string
	IsPublic       bool
}

// RegisterResourceResult captures the registered resource and replay status.
type RegisterResourceResult struct {
	Resource entities.Resource `json:"resource"`
	Replayed bool              `json:"replayed"`
}

// RegisterResourceUseCase coordinates staff-gated, idempotent resource
// registration.
type RegisterResourceUseCase struct {
	Users          ports.UserRepository
	Resources      ports.ResourceRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute validates command input, enforces idempotency, writes the resource
// and stores the replay payload.
func (u RegisterResourceUseCase) Execute(ctx context.Context, cmd RegisterResourceCommand) (RegisterResourceResult, error) {
	logger := application.ResolveLogger(u.Logger)
	logger.Info("register resource started",
		"event", "register_resource_started",
		"module", "identity-access/resource-access-service",
		"layer", "application",
		"caller_id", cmd.CallerID,
		"owner_id", cmd.OwnerID,
	)

	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return RegisterResourceResult{}, domainerrors.ErrIdempotencyKeyRequired
	}
	if strings.TrimSpace(cmd.CallerID) == "" || strings.TrimSpace(cmd.Name) == "" {
		return RegisterResourceResult{}, domainerrors.ErrInvalidRequest
	}
	ownerID := strings.TrimSpace(cmd.OwnerID)
	if ownerID == "" {
		ownerID = strings.TrimSpace(cmd.CallerID)
	}

	caller, err := u.Users.GetUser(ctx, strings.TrimSpace(cmd.CallerID))
	if err != nil {
		return RegisterResourceResult{}, err
	}
	if !caller.CanAccessProtectedResources() || !caller.IsStaff {
		return RegisterResourceResult{}, domainerrors.ErrAccessDenied
	}

	requestHash, err := hashRequest(struct {
		CallerID    string `json:"caller_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		OwnerID     string `json:"owner_id"`
		IsPublic    bool   `json:"is_public"`
	}{
		CallerID:    cmd.CallerID,
		Name:        cmd.Name,
		Description: cmd.Description,
		OwnerID:     ownerID,
		IsPublic:    cmd.IsPublic,
	})
	if err != nil {
		return RegisterResourceResult{}, err
	}

	idempotencyKey := "resource_access_idempotency:" + strings.TrimSpace(cmd.IdempotencyKey)
	now := u.now()

	existing, found, err := u.Idempotency.GetRecord(ctx, idempotencyKey, now)
	if err != nil {
		return RegisterResourceResult{}, err
	}
	if found {
		if existing.RequestHash != requestHash {
			return RegisterResourceResult{}, domainerrors.ErrIdempotencyConflict
		}
		var replay RegisterResourceResult
		if err := json.Unmarshal(existing.ResponsePayload, &replay); err != nil {
			return RegisterResourceResult{}, err
		}
		replay.Replayed = true
		logger.Info("register resource replayed",
			"event", "register_resource_replayed",
			"module", "identity-access/resource-access-service",
			"layer", "application",
			"caller_id", cmd.CallerID,
			"resource_id", replay.Resource.ID,
		)
		return replay, nil
	}

	resourceID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RegisterResourceResult{}, err
	}
	resource := entities.Resource{
		ID:          resourceID,
		Name:        strings.TrimSpace(cmd.Name),
		Description: strings.TrimSpace(cmd.Description),
		OwnerID:     ownerID,
		IsPublic:    cmd.IsPublic,
		CreatedAt:   now,
	}
	if err := u.Resources.CreateResource(ctx, resource); err != nil {
		return RegisterResourceResult{}, err
	}

	result := RegisterResourceResult{Resource: resource}
	payload, err := json.Marshal(result)
	if err != nil {
		return RegisterResourceResult{}, err
	}
	if err := u.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             idempotencyKey,
		RequestHash:     requestHash,
		ResponsePayload: payload,
		ExpiresAt:       now.Add(u.idempotencyTTL()),
	}); err != nil {
		return RegisterResourceResult{}, err
	}

	logger.Info("register resource completed",
		"event", "register_resource_completed",
		"module", "identity-access/resource-access-service",
		"layer", "application",
		"caller_id", cmd.CallerID,
		"resource_id", resource.ID,
	)
	return result, nil
}

func (u RegisterResourceUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (u RegisterResourceUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return u.IdempotencyTTL
}
