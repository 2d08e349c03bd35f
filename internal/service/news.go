package service

import (
	"strings"

	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"
	"portfolio-insights/pkg/logger"
)

type NewsService interface {
	GetAll() []model.NewsItem
	FilterByPortfolio(portfolio []model.PortfolioStock, news []model.NewsItem) []model.NewsItem
}

type newsService struct {
	log      *logger.Logger
	newsRepo repository.NewsRepository
}

func NewNewsService(log *logger.Logger, newsRepo repository.NewsRepository) NewsService {
	return &newsService{log: log, newsRepo: newsRepo}
}

func (s *newsService) GetAll() []model.NewsItem {
	return s.newsRepo.GetAll()
}

// FilterByPortfolio narrows the feed to items mentioning a held
// symbol in the title, content or any tag, case-insensitively. An
// empty portfolio yields an empty result, not the full feed. Input
// order is preserved.
func (s *newsService) FilterByPortfolio(portfolio []model.PortfolioStock, news []model.NewsItem) []model.NewsItem {
	filtered := []model.NewsItem{}
	if len(portfolio) == 0 {
		return filtered
	}

	symbols := make([]string, 0, len(portfolio))
	for _, stock := range portfolio {
		symbols = append(symbols, strings.ToLower(stock.Symbol))
	}

	for _, item := range news {
		if newsMentionsAny(item, symbols) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func newsMentionsAny(item model.NewsItem, symbols []string) bool {
	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)

	for _, symbol := range symbols {
		if strings.Contains(title, symbol) || strings.Contains(content, symbol) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), symbol) {
				return true
			}
		}
	}
	return false
}
