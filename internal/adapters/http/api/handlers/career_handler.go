package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

type CareerHandler struct {
	service usecase.CareerService
}

func NewCareerHandler(s usecase.CareerService) *CareerHandler { return &CareerHandler{service: s} }

func (h *CareerHandler) Explore(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"careers": usecase.CareerCatalog()})
}

type recommendRequest struct {
	Interests           []string `json:"interests"`
	Skills              []string `json:"skills"`
	ExperienceLevel     string   `json:"experience_level"`
	PreferredIndustries []string `json:"preferred_industries"`
}

func (h *CareerHandler) Recommend(c echo.Context) error {
	req := new(recommendRequest)
	if err := c.Bind(req); err != nil {
		return res.ErrorJSON(c, http.StatusBadRequest, "bad_request", "invalid payload", requestIDFromCtx(c), nil)
	}

	user := authmw.UserFromCtx(c)
	result, err := h.service.Recommend(c.Request().Context(), requestIDFromCtx(c), user.UserID, usecase.RecommendInput{
		Interests:           req.Interests,
		Skills:              req.Skills,
		ExperienceLevel:     req.ExperienceLevel,
		PreferredIndustries: req.PreferredIndustries,
	})
	if err != nil {
		return res.ErrorJSON(c, http.StatusInternalServerError, "recommend_failed", "failed to generate recommendations", requestIDFromCtx(c), nil)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"recommendations": result.Recommendations,
		"profile_id":      result.ProfileID,
	})
}
