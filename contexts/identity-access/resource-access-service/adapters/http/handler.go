package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "aegis/contexts/identity-access/resource-access-service/application"
	"aegis/contexts/identity-access/resource-access-service/application/commands"
	"aegis/contexts/identity-access/resource-access-service/application/queries"
	httptransport "aegis/contexts/identity-access/resource-access-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries. It performs no
// business logic of its own.
type Handler struct {
	Access           queries.AccessResourceUseCase
	ListOwned        queries.ListOwnedResourcesUseCase
	RegisterResource commands.RegisterResourceUseCase
	Logger           *slog.Logger
}

// AccessProtectedResourceHandler evaluates access for the authenticated user.
//
// @Summary Access protected resource
// @Description Resolves the authenticated user and the optionally requested resource, evaluates the domain access predicates and returns the decision payload.
// @Tags resource-access
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource_id query string false "Optional resource identifier"
// @Success 200 {object} http.AccessResourceResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 403 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /api/resources/v1/protected [get]
func (h Handler) AccessProtectedResourceHandler(
	ctx context.Context,
	userID string,
	resourceID string,
) (httptransport.AccessResourceResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http access request received",
		"event", "access_http_request_received",
		"module", "identity-access/resource-access-service",
		"layer", "transport",
		"user_id", userID,
		"resource_id", resourceID,
	)

	decision, err := h.Access.Execute(ctx, queries.AccessResourceQuery{
		UserID:     strings.TrimSpace(userID),
		ResourceID: strings.TrimSpace(resourceID),
	})
	if err != nil {
		return httptransport.AccessResourceResponse{}, err
	}

	resp := httptransport.AccessResourceResponse{Status: "success"}
	resp.Data.DecisionID = decision.DecisionID
	resp.Data.Message = decision.Message
	resp.Data.User.ID = decision.User.ID
	resp.Data.User.Username = decision.User.Username
	resp.Data.User.FullName = decision.User.FullName
	resp.Data.GrantedAt = decision.GrantedAt.UTC().Format(time.RFC3339)
	if decision.Resource != nil {
		resp.Data.Resource = &struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}{
			ID:          decision.Resource.ID,
			Name:        decision.Resource.Name,
			Description: decision.Resource.Description,
		}
	}
	return resp, nil
}

// ListOwnedResourcesHandler returns the caller's resources.
//
// @Summary List owned resources
// @Description Returns the protected resources owned by the authenticated user.
// @Tags resource-access
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} http.OwnedResourcesResponse
// @Failure 401 {object} http.ErrorResponse
// @Failure 403 {object} http.ErrorResponse
// @Failure 404 {object} http.ErrorResponse
// @Router /api/resources/v1/owned [get]
func (h Handler) ListOwnedResourcesHandler(
	ctx context.Context,
	userID string,
) (httptransport.OwnedResourcesResponse, error) {
	items, err := h.ListOwned.Execute(ctx, strings.TrimSpace(userID))
	if err != nil {
		return httptransport.OwnedResourcesResponse{}, err
	}

	resp := httptransport.OwnedResourcesResponse{Status: "success"}
	for _, item := range items {
		resp.Data.Resources = append(resp.Data.Resources, struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			IsPublic    bool   `json:"is_public"`
		}{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			IsPublic:    item.IsPublic,
		})
	}
	return resp, nil
}

// RegisterResourceHandler registers a new protected resource.
//
// @Summary Register protected resource
// @Description Staff-only catalog registration with idempotency support.
// @Tags resource-access
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body http.RegisterResourceRequest true "Resource to register"
// @Success 201 {object} http.RegisterResourceResponse
// @Failure 400 {object} http.ErrorResponse
// @Failure 403 {object} http.ErrorResponse
// @Failure 409 {object} http.ErrorResponse
// @Router /api/resources/v1/resources [post]
func (h Handler) RegisterResourceHandler(
	ctx context.Context,
	idempotencyKey string,
	callerID string,
	req httptransport.RegisterResourceRequest,
) (httptransport.RegisterResourceResponse, error) {
	result, err := h.RegisterResource.Execute(ctx, commands.RegisterResourceCommand{
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
		CallerID:       strings.TrimSpace(callerID),
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		OwnerID:        strings.TrimSpace(req.OwnerID),
		IsPublic:       req.IsPublic,
	})
	if err != nil {
		return httptransport.RegisterResourceResponse{}, err
	}

	resp := httptransport.RegisterResourceResponse{Status: "success"}
	resp.Data.Resource.ID = result.Resource.ID
	resp.Data.Resource.Name = result.Resource.Name
	resp.Data.Resource.Description = result.Resource.Description
	resp.Data.Resource.OwnerID = result.Resource.OwnerID
	resp.Data.Resource.IsPublic = result.Resource.IsPublic
	resp.Data.Resource.CreatedAt = result.Resource.CreatedAt.UTC().Format(time.RFC3339)
	resp.Data.Replayed = result.Replayed
	return resp, nil
}
