package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/northstar/goals-api/internal/core/domain"
)

type stubTokens struct {
	subject string
	err     error
}

func (s *stubTokens) Issue(string) (string, error) { return "", nil }

func (s *stubTokens) Validate(string) (string, error) {
	return s.subject, s.err
}

type stubUsers struct {
	user *domain.User
	err  error
}

func (s *stubUsers) Register(context.Context, string, string) (*domain.User, error) {
	return nil, nil
}

func (s *stubUsers) Login(context.Context, string, string) (string, error) {
	return "", nil
}

func (s *stubUsers) CurrentUser(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens := &stubTokens{subject: "a@x.com"}
	users := &stubUsers{user: &domain.User{ID: 42, Email: "a@x.com"}}

	called := false
	handler := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != uint(42) {
			t.Fatalf("user_id not set: %v", c.Get("user_id"))
		}
		if c.Get("email") != "a@x.com" {
			t.Fatalf("email not set: %v", c.Get("email"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubTokens{subject: "a@x.com"}, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubTokens{subject: "a@x.com"}, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	tokens := &stubTokens{err: domain.ErrInvalidToken}
	handler := Auth(tokens, &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_DeletedSubject(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Token is well-formed but its subject no longer exists: the request
	// must be rejected even without a revocation list.
	tokens := &stubTokens{subject: "deleted@x.com"}
	users := &stubUsers{err: domain.ErrUserNotFound}

	handler := Auth(tokens, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
