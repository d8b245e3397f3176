// Package server builds the echo HTTP server with every registered module.
package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"coffeebar.GO/api"
	_ "coffeebar.GO/api/books"
	_ "coffeebar.GO/api/cart"
	_ "coffeebar.GO/api/coffee"
	_ "coffeebar.GO/api/graphql"
	"coffeebar.GO/app"
	"coffeebar.GO/core/session"
	_ "coffeebar.GO/cron/jobs"
	"coffeebar.GO/html"
)

// New returns an echo instance with middleware, renderer and all routes.
func New(deps *app.Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(requestDuration(deps.Log))

	t, err := html.NewTemplate()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	e.Renderer = t
	for _, tmpl := range t.Templates.Templates() {
		deps.Log.Debug("loaded template", zap.String("name", tmpl.Name()))
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(session.Middleware(deps.Config.CartKey))
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)
	return e, nil
}

// requestDuration reports handler time in the X-Request-Duration-ms header.
func requestDuration(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
			})
			err := next(c)
			log.Debug("request", zap.String("path", c.Path()), zap.Duration("took", time.Since(start)))
			return err
		}
	}
}

// Banner prints the startup banner in a random figlet font.
func Banner(text string) {
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy"}
	figure.NewFigure(text, fonts[rand.Intn(len(fonts))], true).Print()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, deps *app.Deps) error {
	e, err := New(deps)
	if err != nil {
		return err
	}

	addr := ":" + deps.Config.Port
	errCh := make(chan error, 1)
	go func() {
		deps.Log.Info("server running", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	deps.Log.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
