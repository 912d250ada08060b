package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/config"
	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

type AuthHandler struct {
	cfg     *config.Config
	service usecase.AuthService
}

func NewAuthHandler(cfg *config.Config, s usecase.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, service: s}
}

type createSessionRequest struct {
	SessionID string `json:"session_id"`
}

// CreateSession exchanges an external session id for an internal session
// and hands the token back both as an httpOnly cookie and in the body so
// bearer clients can use it too.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	req := new(createSessionRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	if req.SessionID == "" {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "session_id required", requestIDFromCtx(c), nil)
	}

	user, token, err := h.service.Exchange(c.Request().Context(), requestIDFromCtx(c), req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamAuth) {
			return res.ErrorJSON(c, http.StatusUnauthorized, "invalid_session_id", "invalid session_id", requestIDFromCtx(c), nil)
		}
		return res.ErrorJSON(c, http.StatusInternalServerError, "session_create_failed", "session creation failed", requestIDFromCtx(c), nil)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":          user,
		"session_token": token,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authmw.UserFromCtx(c))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(authmw.ContextSessionToken).(string)
	if err := h.service.Destroy(c.Request().Context(), requestIDFromCtx(c), token); err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "logout_failed", "logout failed", requestIDFromCtx(c), nil)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
