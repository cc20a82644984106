package httpserver

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	resourceaccess "aegis/contexts/identity-access/resource-access-service"
)

func newTestServer() *Server {
	return New(
		resourceaccess.NewInMemoryModule(slog.Default()),
		slog.Default(),
		":0",
		"read",
	)
}

func TestProtectedResourceRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/protected", nil)
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", "user_1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProtectedResourceRequiresReadScope(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "profile")
	req.Header.Set("X-User-Id", "user_1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProtectedResourceRequiresIdentity(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegisterResourceRequiresWriteScope(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/v1/resources", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", "user_admin")
	req.Header.Set("Idempotency-Key", "idem-http-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRequestIDMintedWhenAbsent(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", "user_1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected minted X-Request-Id header")
	}
}

func TestRequestIDEchoedWhenPresent(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resources/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("X-Scopes", "read")
	req.Header.Set("X-User-Id", "user_1")
	req.Header.Set("X-Request-Id", "req-echo-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-Id"); got != "req-echo-1" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
