package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medtrack/medtrack-go/internal/crypto"
)

func authedRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/today", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rr := httptest.NewRecorder()
	JWTAuth("test-secret")(next).ServeHTTP(rr, req)

	if rr.Code == http.StatusOK && (!gotOK || gotUserID == 0) {
		t.Error("handler ran without user ID in context")
	}
	return rr
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rr := authedRequest(t, "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthBadFormat(t *testing.T) {
	rr := authedRequest(t, "Basic abc123")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rr := authedRequest(t, "Bearer not-a-token")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, err := crypto.GenerateToken(7, "bob@example.com", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rr := authedRequest(t, "Bearer "+token)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := crypto.GenerateToken(7, "bob@example.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rr := authedRequest(t, "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestClaimsFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ClaimsFromContext(req.Context()); ok {
		t.Error("ClaimsFromContext() reported claims on an empty context")
	}
}
