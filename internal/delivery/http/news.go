package http

import (
	"net/http"

	"portfolio-insights/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupNews(base *echo.Group) {
	base.GET("/news", h.GetNews)
}

func (h *HttpAPIHandler) GetNews(c echo.Context) error {
	news := h.service.NewsService.GetAll()
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Latest market news", news))
}
