package repository

import (
	"strings"

	"portfolio-insights/internal/model"
)

type StockRepository interface {
	GetAll() []model.Stock
	GetBySymbol(symbol string) (model.Stock, bool)
}

type staticStockRepository struct {
	stocks []model.Stock
}

func NewStockRepository() StockRepository {
	return &staticStockRepository{stocks: popularStocks}
}

func (r *staticStockRepository) GetAll() []model.Stock {
	out := make([]model.Stock, len(r.stocks))
	copy(out, r.stocks)
	return out
}

func (r *staticStockRepository) GetBySymbol(symbol string) (model.Stock, bool) {
	symbol = strings.ToUpper(symbol)
	for _, s := range r.stocks {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return model.Stock{}, false
}

var popularStocks = []model.Stock{
	{Symbol: "RELIANCE", Name: "Reliance Industries Ltd", CurrentPrice: 2456.75},
	{Symbol: "TCS", Name: "Tata Consultancy Services", CurrentPrice: 3678.90},
	{Symbol: "HDFCBANK", Name: "HDFC Bank Ltd", CurrentPrice: 1543.25},
	{Symbol: "INFY", Name: "Infosys Ltd", CurrentPrice: 1432.80},
	{Symbol: "ITC", Name: "ITC Ltd", CurrentPrice: 456.30},
	{Symbol: "WIPRO", Name: "Wipro Ltd", CurrentPrice: 432.15},
	{Symbol: "BHARTIARTL", Name: "Bharti Airtel Ltd", CurrentPrice: 876.45},
	{Symbol: "ADANIPORTS", Name: "Adani Ports & SEZ", CurrentPrice: 789.60},
}
