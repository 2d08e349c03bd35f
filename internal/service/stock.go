package service

import (
	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"
)

type StockService interface {
	GetPopular() []model.Stock
}

type stockService struct {
	stockRepo repository.StockRepository
}

func NewStockService(stockRepo repository.StockRepository) StockService {
	return &stockService{stockRepo: stockRepo}
}

func (s *stockService) GetPopular() []model.Stock {
	return s.stockRepo.GetAll()
}
