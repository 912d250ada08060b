package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

type ProfileHandler struct {
	service usecase.ProfileService
}

func NewProfileHandler(s usecase.ProfileService) *ProfileHandler { return &ProfileHandler{service: s} }

func (h *ProfileHandler) Profile(c echo.Context) error {
	user := authmw.UserFromCtx(c)
	overview, err := h.service.Overview(c.Request().Context(), user.UserID)
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "profile_failed", "failed to load profile", requestIDFromCtx(c), nil)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":           user,
		"stats":          overview.Stats,
		"career_profile": overview.CareerProfile,
	})
}
