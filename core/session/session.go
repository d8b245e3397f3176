// Package session identifies a visitor so each one gets its own cart.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CookieName = "coffeebar_session"
	// HeaderName lets API clients pick their session without cookies.
	HeaderName = "X-Cart-Session"

	cookieMaxAge = 30 * 24 * time.Hour
	echoKey      = "cartKey"
)

type ctxKey struct{}

// WithCartKey attaches key to ctx.
func WithCartKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxKey{}, key)
}

// CartKeyFromContext returns the cart key stored in ctx.
func CartKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ctxKey{}).(string)
	return key, ok && key != ""
}

// Key joins the base storage key and a session id.
func Key(base, id string) string {
	return base + ":" + id
}

// Middleware resolves the session id from the header or cookie, issuing a
// new one when neither carries a valid UUID, and exposes the cart key to
// handlers and to the request context.
func Middleware(base string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := fromRequest(c.Request())
			if !ok {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			key := Key(base, id)
			c.Set(echoKey, key)
			req := c.Request()
			c.SetRequest(req.WithContext(WithCartKey(req.Context(), key)))
			return next(c)
		}
	}
}

// CartKey returns the cart key set by Middleware.
func CartKey(c echo.Context) string {
	if key, ok := c.Get(echoKey).(string); ok {
		return key
	}
	key, _ := CartKeyFromContext(c.Request().Context())
	return key
}

func fromRequest(r *http.Request) (string, bool) {
	if h := r.Header.Get(HeaderName); h != "" {
		if id, err := uuid.Parse(h); err == nil {
			return id.String(), true
		}
	}
	if ck, err := r.Cookie(CookieName); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id.String(), true
		}
	}
	return "", false
}
