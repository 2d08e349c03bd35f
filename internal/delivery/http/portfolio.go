package http

import (
	"errors"
	"net/http"

	"portfolio-insights/internal/dto"
	"portfolio-insights/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPortfolio(base *echo.Group) {
	portfolioGroup := base.Group("/portfolio/:sessionID")
	{
		portfolioGroup.GET("", h.GetPortfolio)
		portfolioGroup.GET("/news", h.GetPortfolioNews)
		portfolioGroup.POST("/stocks", h.AddStock)
		portfolioGroup.PUT("/stocks/:symbol", h.UpdateQuantity)
		portfolioGroup.DELETE("/stocks/:symbol", h.RemoveStock)
	}
}

func (h *HttpAPIHandler) GetPortfolio(c echo.Context) error {
	portfolio := h.service.PortfolioService.Get(c.Param("sessionID"))
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Portfolio", portfolio))
}

// GetPortfolioNews returns the feed narrowed to the session holdings.
// An empty portfolio yields an empty list, never the full feed.
func (h *HttpAPIHandler) GetPortfolioNews(c echo.Context) error {
	portfolio := h.service.PortfolioService.Get(c.Param("sessionID"))
	news := h.service.NewsService.GetAll()
	filtered := h.service.NewsService.FilterByPortfolio(portfolio.Stocks, news)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Portfolio news", filtered))
}

func (h *HttpAPIHandler) AddStock(c echo.Context) error {
	req := new(dto.AddStockRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	portfolio := h.service.PortfolioService.AddStock(c.Param("sessionID"), *req)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Stock added", portfolio))
}

func (h *HttpAPIHandler) UpdateQuantity(c echo.Context) error {
	req := new(dto.UpdateQuantityRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	portfolio, err := h.service.PortfolioService.UpdateQuantity(c.Param("sessionID"), c.Param("symbol"), req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrStockNotHeld) {
			return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to update portfolio", nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Quantity updated", portfolio))
}

func (h *HttpAPIHandler) RemoveStock(c echo.Context) error {
	portfolio := h.service.PortfolioService.RemoveStock(c.Param("sessionID"), c.Param("symbol"))
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Stock removed", portfolio))
}
