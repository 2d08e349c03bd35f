package service

import (
	"testing"
	"time"

	"portfolio-insights/config"
	"portfolio-insights/internal/dto"
	"portfolio-insights/internal/repository"
	"portfolio-insights/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortfolioService() PortfolioService {
	cfg := &config.Config{
		Portfolio: config.PortfolioConfig{SessionTTL: time.Hour},
	}
	c := cache.NewCache(time.Hour, time.Hour)
	return NewPortfolioService(newTestLogger(), repository.NewPortfolioRepository(cfg, c), repository.NewStockRepository())
}

func TestPortfolioService_AddStock(t *testing.T) {
	svc := newTestPortfolioService()

	portfolio := svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "tcs", Quantity: 2})

	require.Len(t, portfolio.Stocks, 1)
	assert.Equal(t, "TCS", portfolio.Stocks[0].Symbol)
	assert.Equal(t, 2, portfolio.Stocks[0].Quantity)
	// name and price filled in from the popular catalog
	assert.Equal(t, "Tata Consultancy Services", portfolio.Stocks[0].Name)
	assert.Equal(t, 3678.90, portfolio.Stocks[0].Price)
}

func TestPortfolioService_AddStock_DuplicateIncrementsQuantity(t *testing.T) {
	svc := newTestPortfolioService()

	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})
	portfolio := svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "tcs", Quantity: 3})

	require.Len(t, portfolio.Stocks, 1)
	assert.Equal(t, 5, portfolio.Stocks[0].Quantity)
}

func TestPortfolioService_AddStock_UnknownSymbolUsesRequestFields(t *testing.T) {
	svc := newTestPortfolioService()

	portfolio := svc.AddStock("sess-1", dto.AddStockRequest{
		Symbol:   "ZOMATO",
		Name:     "Zomato Ltd",
		Quantity: 10,
		Price:    120.5,
	})

	require.Len(t, portfolio.Stocks, 1)
	assert.Equal(t, "ZOMATO", portfolio.Stocks[0].Symbol)
	assert.Equal(t, "Zomato Ltd", portfolio.Stocks[0].Name)
	assert.Equal(t, 120.5, portfolio.Stocks[0].Price)
}

func TestPortfolioService_UpdateQuantity(t *testing.T) {
	svc := newTestPortfolioService()
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "INFY", Quantity: 4})

	portfolio, err := svc.UpdateQuantity("sess-1", "infy", 7)
	require.NoError(t, err)
	require.Len(t, portfolio.Stocks, 2)
	assert.Equal(t, 7, portfolio.Stocks[1].Quantity)

	// order of the remaining holdings is untouched
	assert.Equal(t, "TCS", portfolio.Stocks[0].Symbol)
}

func TestPortfolioService_UpdateQuantity_ZeroRemovesHolding(t *testing.T) {
	svc := newTestPortfolioService()
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})

	portfolio, err := svc.UpdateQuantity("sess-1", "TCS", 0)
	require.NoError(t, err)
	assert.Empty(t, portfolio.Stocks)
}

func TestPortfolioService_UpdateQuantity_UnknownSymbol(t *testing.T) {
	svc := newTestPortfolioService()
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})

	_, err := svc.UpdateQuantity("sess-1", "WIPRO", 3)
	assert.ErrorIs(t, err, ErrStockNotHeld)
}

func TestPortfolioService_RemoveStock(t *testing.T) {
	svc := newTestPortfolioService()
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "INFY", Quantity: 1})

	portfolio := svc.RemoveStock("sess-1", "tcs")

	require.Len(t, portfolio.Stocks, 1)
	assert.Equal(t, "INFY", portfolio.Stocks[0].Symbol)

	// removing an absent symbol is a no-op
	portfolio = svc.RemoveStock("sess-1", "HDFCBANK")
	assert.Len(t, portfolio.Stocks, 1)
}

func TestPortfolioService_SessionsAreIsolated(t *testing.T) {
	svc := newTestPortfolioService()
	svc.AddStock("sess-1", dto.AddStockRequest{Symbol: "TCS", Quantity: 2})

	other := svc.Get("sess-2")
	assert.Empty(t, other.Stocks)
}
