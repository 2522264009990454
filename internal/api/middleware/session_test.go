package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

type stubAuthService struct {
	validateFn func(ctx context.Context, token string) (domain.SessionUser, error)
}

func (s *stubAuthService) Login(context.Context, string, string) (string, domain.SessionUser, error) {
	panic("not used")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	panic("not used")
}

func (s *stubAuthService) Validate(ctx context.Context, token string) (domain.SessionUser, error) {
	return s.validateFn(ctx, token)
}

func runSession(t *testing.T, cookie *http.Cookie, auth *stubAuthService) (error, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Session(auth)(next)(c), c
}

func TestSession_NoCookie(t *testing.T) {
	auth := &stubAuthService{validateFn: func(context.Context, string) (domain.SessionUser, error) {
		t.Fatalf("store should not be consulted without a cookie")
		return domain.SessionUser{}, nil
	}}

	err, _ := runSession(t, nil, auth)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	auth := &stubAuthService{validateFn: func(_ context.Context, token string) (domain.SessionUser, error) {
		return domain.SessionUser{}, domain.ErrUnauthorized
	}}

	err, _ := runSession(t, &http.Cookie{Name: SessionCookieName, Value: "stale"}, auth)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_ValidToken(t *testing.T) {
	want := domain.SessionUser{ID: 7, Username: "admin", FullName: "System Administrator"}
	auth := &stubAuthService{validateFn: func(_ context.Context, token string) (domain.SessionUser, error) {
		if token != "tok123" {
			t.Fatalf("unexpected token: %s", token)
		}
		return want, nil
	}}

	err, c := runSession(t, &http.Cookie{Name: SessionCookieName, Value: "tok123"}, auth)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	got, ok := SessionUser(c)
	if !ok || got != want {
		t.Fatalf("session user not injected: %+v", got)
	}
}
