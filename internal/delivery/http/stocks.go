package http

import (
	"net/http"

	"portfolio-insights/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	base.GET("/stocks", h.GetPopularStocks)
}

func (h *HttpAPIHandler) GetPopularStocks(c echo.Context) error {
	stocks := h.service.StockService.GetPopular()
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Popular stocks", stocks))
}
