package service

import (
	"errors"
	"strings"

	"portfolio-insights/internal/dto"
	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"
	"portfolio-insights/pkg/logger"
)

// ErrStockNotHeld is returned when a quantity update targets a symbol
// that is not in the session portfolio.
var ErrStockNotHeld = errors.New("stock is not in the portfolio")

type PortfolioService interface {
	Get(sessionID string) *model.Portfolio
	AddStock(sessionID string, req dto.AddStockRequest) *model.Portfolio
	UpdateQuantity(sessionID string, symbol string, quantity int) (*model.Portfolio, error)
	RemoveStock(sessionID string, symbol string) *model.Portfolio
}

type portfolioService struct {
	log           *logger.Logger
	portfolioRepo repository.PortfolioRepository
	stockRepo     repository.StockRepository
}

func NewPortfolioService(log *logger.Logger, portfolioRepo repository.PortfolioRepository, stockRepo repository.StockRepository) PortfolioService {
	return &portfolioService{
		log:           log,
		portfolioRepo: portfolioRepo,
		stockRepo:     stockRepo,
	}
}

func (s *portfolioService) Get(sessionID string) *model.Portfolio {
	return s.portfolioRepo.Get(sessionID)
}

// AddStock adds a holding. Adding a symbol that is already held
// increments its quantity instead of creating a second entry. Name
// and price fall back to the popular catalog when not supplied.
func (s *portfolioService) AddStock(sessionID string, req dto.AddStockRequest) *model.Portfolio {
	portfolio := s.portfolioRepo.Get(sessionID)
	symbol := strings.ToUpper(req.Symbol)

	for i, held := range portfolio.Stocks {
		if held.Symbol == symbol {
			portfolio.Stocks[i].Quantity += req.Quantity
			s.portfolioRepo.Save(portfolio)
			return portfolio
		}
	}

	stock := model.Stock{
		Symbol:       symbol,
		Name:         req.Name,
		CurrentPrice: req.Price,
	}
	if catalogStock, ok := s.stockRepo.GetBySymbol(symbol); ok {
		stock = catalogStock
	}

	price := req.Price
	if price == 0 {
		price = stock.CurrentPrice
	}

	portfolio.Stocks = append(portfolio.Stocks, model.PortfolioStock{
		Stock:    stock,
		Quantity: req.Quantity,
		Price:    price,
	})
	s.portfolioRepo.Save(portfolio)

	s.log.Info("stock added to portfolio",
		logger.StringField("session_id", sessionID),
		logger.StringField("symbol", symbol),
	)
	return portfolio
}

// UpdateQuantity sets the held quantity. A quantity of zero or below
// removes the holding entirely.
func (s *portfolioService) UpdateQuantity(sessionID string, symbol string, quantity int) (*model.Portfolio, error) {
	symbol = strings.ToUpper(symbol)
	if quantity <= 0 {
		return s.RemoveStock(sessionID, symbol), nil
	}

	portfolio := s.portfolioRepo.Get(sessionID)
	for i, held := range portfolio.Stocks {
		if held.Symbol == symbol {
			portfolio.Stocks[i].Quantity = quantity
			s.portfolioRepo.Save(portfolio)
			return portfolio, nil
		}
	}
	return nil, ErrStockNotHeld
}

// RemoveStock drops a holding. Removing an absent symbol is a no-op.
func (s *portfolioService) RemoveStock(sessionID string, symbol string) *model.Portfolio {
	symbol = strings.ToUpper(symbol)
	portfolio := s.portfolioRepo.Get(sessionID)

	remaining := portfolio.Stocks[:0]
	for _, held := range portfolio.Stocks {
		if held.Symbol != symbol {
			remaining = append(remaining, held)
		}
	}
	portfolio.Stocks = remaining
	s.portfolioRepo.Save(portfolio)
	return portfolio
}
