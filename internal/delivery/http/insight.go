package http

import (
	"net/http"

	"portfolio-insights/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupInsights(base *echo.Group) {
	base.POST("/analyze", h.Analyze)
}

// Analyze validates the inbound portfolio and runs the insight
// generation. A malformed or empty portfolio is the only user-visible
// error here; provider-side failures surface as the neutral fallback
// result with a 200. Panics escaping the generation path are caught
// by the recover middleware and turned into a generic 500.
func (h *HttpAPIHandler) Analyze(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AnalyzeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Portfolio data is required"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Portfolio data is required"})
	}

	result := h.service.InsightService.Analyze(ctx, req.Portfolio, req.News)
	return c.JSON(http.StatusOK, result)
}
