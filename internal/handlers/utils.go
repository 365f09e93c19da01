package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// queryInt reads an integer query parameter. Missing or non-integer values
// yield fallback.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
