package service

import (
	"portfolio-insights/config"
	"portfolio-insights/internal/repository"
	"portfolio-insights/pkg/logger"
)

type Service struct {
	NewsService      NewsService
	StockService     StockService
	PortfolioService PortfolioService
	InsightService   InsightService
}

func NewService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) *Service {
	return &Service{
		NewsService:      NewNewsService(log, repo.NewsRepo),
		StockService:     NewStockService(repo.StockRepo),
		PortfolioService: NewPortfolioService(log, repo.PortfolioRepo, repo.StockRepo),
		InsightService:   NewInsightService(cfg, log, repo.GeminiAIRepo),
	}
}
