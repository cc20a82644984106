package httpserver

import (
	"errors"
	"net/http"
	"strings"

	accesserrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
	accesshttp "aegis/contexts/identity-access/resource-access-service/transport/http"
)

func writeResourceAccessError(w http.ResponseWriter, status int, code string, detail string) {
	writeJSON(w, status, accesshttp.ErrorResponse{Code: code, Detail: detail})
}

// writeResourceAccessDomainError is the single place mapping the domain error
// taxonomy to transport status codes.
func writeResourceAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUserNotFound),
		errors.Is(err, accesserrors.ErrResourceNotFound):
		writeResourceAccessError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accesserrors.ErrAccessDenied):
		writeResourceAccessError(w, http.StatusForbidden, "access_denied", err.Error())
	case errors.Is(err, accesserrors.ErrInvalidRequest),
		errors.Is(err, accesserrors.ErrIdempotencyKeyRequired):
		writeResourceAccessError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accesserrors.ErrResourceAlreadyExists),
		errors.Is(err, accesserrors.ErrIdempotencyConflict):
		writeResourceAccessError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeResourceAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// The helpers below are the authentication gate boundary. Token issuance and
// validation live outside this process; the gate asserts the shape the
// OAuth2 layer would have produced: a bearer credential, a verified identity
// and a granted scope set.

func (s *Server) requireAuthorization(w http.ResponseWriter, r *http.Request) bool {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeResourceAccessError(w, http.StatusUnauthorized, "not_authenticated",
			"Authentication credentials were not provided.")
		return false
	}
	return true
}

func (s *Server) requireScope(w http.ResponseWriter, r *http.Request, scope string) bool {
	granted := strings.FieldsFunc(r.Header.Get("X-Scopes"), func(c rune) bool {
		return c == ' ' || c == ','
	})
	for _, item := range granted {
		if strings.EqualFold(strings.TrimSpace(item), scope) {
			return true
		}
	}
	writeResourceAccessError(w, http.StatusForbidden, "insufficient_scope",
		"Granted scopes do not include "+scope+".")
	return false
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeResourceAccessError(w, http.StatusUnauthorized, "missing_user",
			"X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func requireIdempotencyKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if key == "" {
		writeResourceAccessError(w, http.StatusBadRequest, "idempotency_key_required",
			"Idempotency-Key header is required")
		return "", false
	}
	return key, true
}

func (s *Server) handleAccessProtectedResource(w http.ResponseWriter, r *http.Request) {
	ensureRequestID(w, r)
	if !s.requireAuthorization(w, r) || !s.requireScope(w, r, s.requiredScope) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := s.resourceAccess.Handler.AccessProtectedResourceHandler(
		r.Context(),
		userID,
		r.URL.Query().Get("resource_id"),
	)
	if err != nil {
		writeResourceAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOwnedResources(w http.ResponseWriter, r *http.Request) {
	ensureRequestID(w, r)
	if !s.requireAuthorization(w, r) || !s.requireScope(w, r, s.requiredScope) {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := s.resourceAccess.Handler.ListOwnedResourcesHandler(r.Context(), userID)
	if err != nil {
		writeResourceAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisterResource(w http.ResponseWriter, r *http.Request) {
	ensureRequestID(w, r)
	if !s.requireAuthorization(w, r) ||
		!s.requireScope(w, r, s.requiredScope) ||
		!s.requireScope(w, r, "write") {
		return
	}
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	idempotencyKey, ok := requireIdempotencyKey(w, r)
	if !ok {
		return
	}

	var req accesshttp.RegisterResourceRequest
	if !s.decodeJSON(w, r, &req, writeResourceAccessError) {
		return
	}

	resp, err := s.resourceAccess.Handler.RegisterResourceHandler(
		r.Context(),
		idempotencyKey,
		userID,
		req,
	)
	if err != nil {
		writeResourceAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
