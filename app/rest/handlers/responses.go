package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the response shape shared by every endpoint in the surrounding
// system: {ok: true, data} on success, {ok: false, error} on failure.
type Envelope struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func jsonOk(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{OK: true, Data: data})
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{OK: false, Error: message})
}
