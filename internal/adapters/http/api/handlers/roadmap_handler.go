package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

type RoadmapHandler struct {
	service usecase.RoadmapService
}

func NewRoadmapHandler(s usecase.RoadmapService) *RoadmapHandler { return &RoadmapHandler{service: s} }

type generateRequest struct {
	CareerTitle     string `json:"career_title"`
	ExperienceLevel string `json:"experience_level"`
}

func (h *RoadmapHandler) Generate(c echo.Context) error {
	req := new(generateRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}
	if req.CareerTitle == "" {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "career_title required", requestIDFromCtx(c), nil)
	}

	user := authmw.UserFromCtx(c)
	result, err := h.service.Generate(c.Request().Context(), requestIDFromCtx(c), user.UserID, req.CareerTitle, req.ExperienceLevel)
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "generate_failed", "failed to generate roadmap", requestIDFromCtx(c), nil)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"roadmap":    result.Roadmap,
		"roadmap_id": result.RoadmapID,
	})
}

func (h *RoadmapHandler) List(c echo.Context) error {
	user := authmw.UserFromCtx(c)
	roadmaps, err := h.service.List(c.Request().Context(), user.UserID)
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "list_failed", "failed to list roadmaps", requestIDFromCtx(c), nil)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"roadmaps": roadmaps})
}

func (h *RoadmapHandler) Get(c echo.Context) error {
	user := authmw.UserFromCtx(c)
	roadmap, err := h.service.Get(c.Request().Context(), user.UserID, c.Param("roadmapId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return res.ErrorJSON(c, http.StatusNotFound, "not_found", "roadmap not found", requestIDFromCtx(c), nil)
		}
		return res.ErrorJSON(c, http.StatusInternalServerError, "get_failed", "failed to load roadmap", requestIDFromCtx(c), nil)
	}
	return c.JSON(http.StatusOK, roadmap)
}
