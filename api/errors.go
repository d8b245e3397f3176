package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"coffeebar.GO/core/fetch"
	"coffeebar.GO/service/shop"
)

// ErrorStatus maps service errors to HTTP status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, shop.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, shop.ErrSoldOut):
		return http.StatusConflict
	case errors.Is(err, fetch.ErrNetwork), errors.Is(err, fetch.ErrFormat):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// JSONError writes {"error": msg} with the status for err.
func JSONError(c echo.Context, err error, msg string) error {
	if msg == "" {
		msg = err.Error()
	}
	return c.JSON(ErrorStatus(err), echo.Map{"error": msg})
}
