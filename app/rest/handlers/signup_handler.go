package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"signup-service/app/domain"
	"signup-service/app/port"
	apperrors "signup-service/app/utils/errors"
)

// SignupHandler handles signup HTTP requests
type SignupHandler struct {
	signupUsecase port.SignupUsecase
	logger        *slog.Logger
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupUsecase port.SignupUsecase, logger *slog.Logger) *SignupHandler {
	return &SignupHandler{
		signupUsecase: signupUsecase,
		logger:        logger,
	}
}

// Register handles POST /v1/auth/registro
// @Summary Register a new tenant and its admin user
// @Description Create a confirmed identity, profile, tenant and admin membership in one flow
// @Tags signup
// @Accept json
// @Produce json
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 429 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /v1/auth/registro [post]
func (h *SignupHandler) Register(c echo.Context) error {
	var req domain.SignupRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("malformed signup body",
			"error", err,
			"ip", c.RealIP())
		return jsonError(c, http.StatusBadRequest, "corpo da requisição inválido")
	}

	clientID := clientIdentifier(c.Request())

	h.logger.Info("signup request received",
		"client_known", clientID != domain.UnknownClient,
		"user_agent", c.Request().Header.Get("User-Agent"))

	result, err := h.signupUsecase.Signup(c.Request().Context(), &req, clientID)
	if err != nil {
		return h.handleSignupError(c, err)
	}

	return jsonOk(c, result)
}

// handleSignupError maps a flow error onto the response envelope. The
// upstream cause is logged here and never sent to the client.
func (h *SignupHandler) handleSignupError(c echo.Context, err error) error {
	appErr := apperrors.FromError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("signup failed",
			"code", appErr.Code,
			"error", err)
	} else {
		h.logger.Warn("signup rejected",
			"code", appErr.Code,
			"status", appErr.StatusCode)
	}

	return jsonError(c, appErr.StatusCode, appErr.Message)
}

// clientIdentifier derives the rate-limit identity for a request: the first
// forwarded-for address, else the real-ip header, else the shared sentinel.
func clientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get(echo.HeaderXForwardedFor); forwarded != "" {
		first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	if realIP := r.Header.Get(echo.HeaderXRealIP); realIP != "" {
		return realIP
	}

	return domain.UnknownClient
}
