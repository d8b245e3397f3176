package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var got string
	e.GET("/", func(c echo.Context) error {
		got = CartKey(c)
		if ctxKey, ok := CartKeyFromContext(c.Request().Context()); !ok || ctxKey != got {
			t.Errorf("context key %q does not match %q", ctxKey, got)
		}
		return c.NoContent(http.StatusOK)
	}, Middleware("coffeeCart"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, got
}

func TestMiddlewareIssuesSession(t *testing.T) {
	rec, key := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(key, "coffeeCart:") {
		t.Fatalf("key = %q", key)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v", cookies)
	}
	if Key("coffeeCart", cookies[0].Value) != key {
		t.Errorf("cookie %q does not match key %q", cookies[0].Value, key)
	}
}

func TestMiddlewareReusesCookie(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	rec, key := serve(t, req)
	if key != "coffeeCart:"+id {
		t.Errorf("key = %q", key)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("existing session should not be reissued")
	}
}

func TestMiddlewareHeaderWins(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderName, id)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: uuid.NewString()})
	if _, key := serve(t, req); key != "coffeeCart:"+id {
		t.Errorf("key = %q", key)
	}
}

func TestMiddlewareRejectsInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc"})
	rec, key := serve(t, req)
	if strings.Contains(key, "etc") {
		t.Errorf("invalid id accepted: %q", key)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Error("expected a fresh session cookie")
	}
}
