// Package query parses optional filter parameters from echo requests.
// Absent or malformed values come back as nil, so a bad filter never breaks
// a listing; it just doesn't narrow it.
package query

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Int returns the named query parameter as an int, or nil when absent or
// non-numeric.
func Int(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// Int64 returns the named query parameter as an int64, or nil.
func Int64(c echo.Context, name string) *int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Bool returns the named query parameter as a bool, or nil. Accepts the
// forms strconv.ParseBool accepts (true/false/1/0 and friends).
func Bool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ID parses a path parameter as a positive int64 id.
func ID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
