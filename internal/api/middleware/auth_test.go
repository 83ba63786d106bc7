package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/domain"
)

type stubSessions struct {
	sessions map[string]string
}

func (s *stubSessions) Save(_ context.Context, sessionID, userID string, _ time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *stubSessions) Lookup(_ context.Context, sessionID string) (string, error) {
	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}

func (s *stubSessions) Revoke(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{"sess-1": "user-1"}}
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"jti": "sess-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("session_id") != "sess-1" {
			t.Fatalf("session_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertUnauthorized(t, e, c, rec, handler)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertUnauthorized(t, e, c, rec, handler)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{"sess-1": "user-1"}}
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"jti": "sess-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertUnauthorized(t, e, c, rec, handler)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{"sess-1": "user-1"}}
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"jti": "sess-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertUnauthorized(t, e, c, rec, handler)
}

// A structurally valid, unexpired token must still be rejected once its
// session has been revoked — this is what makes logout effective.
func TestAuthMiddleware_RevokedSession(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]string{}}
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"jti": "sess-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", sessions)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertUnauthorized(t, e, c, rec, handler)
}

func assertUnauthorized(t *testing.T, e *echo.Echo, c echo.Context, rec *httptest.ResponseRecorder, handler echo.HandlerFunc) {
	t.Helper()
	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
