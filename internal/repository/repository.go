package repository

import (
	"portfolio-insights/config"
	"portfolio-insights/pkg/cache"
	"portfolio-insights/pkg/logger"
)

type Repository struct {
	NewsRepo      NewsRepository
	StockRepo     StockRepository
	PortfolioRepo PortfolioRepository
	GeminiAIRepo  TextGenerator
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		NewsRepo:      NewNewsRepository(),
		StockRepo:     NewStockRepository(),
		PortfolioRepo: NewPortfolioRepository(cfg, inmemoryCache),
		GeminiAIRepo:  geminiAIRepo,
	}, nil
}
