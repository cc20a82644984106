package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	accesshttp "aegis/contexts/identity-access/resource-access-service/transport/http"
)

func doProtectedGet(server *Server, userID string, resourceID string) *httptest.ResponseRecorder {
	target := "/api/resources/v1/protected"
	if resourceID != "" {
		target += "?resource_id=" + resourceID
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", userID)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestGeneralProtectedAccess(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp accesshttp.AccessResourceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.Data.Message != "Access granted" {
		t.Fatalf("unexpected message %q", resp.Data.Message)
	}
	if resp.Data.User.Username != "testuser" {
		t.Fatalf("unexpected username %q", resp.Data.User.Username)
	}
	if resp.Data.Resource != nil {
		t.Fatalf("expected no resource summary, got %+v", resp.Data.Resource)
	}
}

func TestProtectedAccessWithResourceSummary(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_1", "res_2")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp accesshttp.AccessResourceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Data.Resource == nil || resp.Data.Resource.Name != "Public Documentation" {
		t.Fatalf("unexpected resource payload: %+v", resp.Data.Resource)
	}
}

func TestProtectedAccessInactiveUserIsForbidden(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_2", "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp accesshttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Code != "access_denied" {
		t.Fatalf("unexpected code %q", resp.Code)
	}
}

func TestProtectedAccessUnknownUserIsNotFound(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_999", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProtectedAccessUnknownResourceIsNotFound(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_1", "res_999")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProtectedAccessRestrictedResourceIsForbidden(t *testing.T) {
	server := newTestServer()
	rr := doProtectedGet(server, "user_1", "res_3")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListOwnedResources(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/owned", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", "user_admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp accesshttp.OwnedResourcesResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Data.Resources) != 2 {
		t.Fatalf("expected 2 owned resources, got %d", len(resp.Data.Resources))
	}
}

func TestRegisterResourceRoundTrip(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Quarterly Reports","description":"Finance exports","owner_id":"user_1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/resources/v1/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read write")
	req.Header.Set("X-User-Id", "user_admin")
	req.Header.Set("Idempotency-Key", "idem-http-2")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp accesshttp.RegisterResourceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	resourceID := resp.Data.Resource.ID
	if resourceID == "" {
		t.Fatal("expected generated resource id")
	}

	get := doProtectedGet(server, "user_1", resourceID)
	if get.Code != http.StatusOK {
		t.Fatalf("expected owner to read registered resource, got %d body=%s", get.Code, get.Body.String())
	}
}

func TestRegisterResourceNonStaffForbidden(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Not Allowed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/resources/v1/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read write")
	req.Header.Set("X-User-Id", "user_1")
	req.Header.Set("Idempotency-Key", "idem-http-3")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegisterResourceRequiresIdempotencyHeader(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"No Key"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/resources/v1/resources", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read write")
	req.Header.Set("X-User-Id", "user_admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
