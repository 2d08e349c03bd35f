package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-insights/config"
	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"
	"portfolio-insights/pkg/logger"
)

const (
	fallbackConfidence    = 60
	placeholderConfidence = 50

	fallbackSummary         = "Detailed AI analysis unavailable (missing key or request failed). Please try again later."
	fallbackReasoning       = "Analysis temporarily unavailable. Manual review recommended."
	placeholderReasoning    = "No specific news found for this stock in the current analysis period."
	fallbackMarketSentiment = "Mixed signals in the current market environment require careful monitoring."
)

var fallbackRecommendations = []string{
	"Monitor your portfolio regularly for any significant changes",
	"Consider diversifying across different sectors",
	"Stay updated with latest financial news and market trends",
}

type InsightService interface {
	Analyze(ctx context.Context, portfolio []model.PortfolioStock, news []model.NewsItem) *model.InsightResult
}

type insightService struct {
	cfg           *config.Config
	log           *logger.Logger
	textGenerator repository.TextGenerator
}

func NewInsightService(cfg *config.Config, log *logger.Logger, textGenerator repository.TextGenerator) InsightService {
	return &insightService{
		cfg:           cfg,
		log:           log,
		textGenerator: textGenerator,
	}
}

// Analyze produces an impact analysis for the given portfolio and
// news. It never fails past its own boundary: a missing credential,
// a provider error and a malformed provider response all collapse to
// the same neutral fallback result.
func (s *insightService) Analyze(ctx context.Context, portfolio []model.PortfolioStock, news []model.NewsItem) *model.InsightResult {
	prompt := buildAnalysisPrompt(portfolio, news)

	text, err := s.textGenerator.GenerateText(ctx, analysisSystemInstruction, prompt)
	if err != nil {
		s.log.WarnContext(ctx, "ai generation failed, returning fallback analysis", logger.ErrorField(err))
		return fallbackResult(portfolio)
	}

	result, err := parseInsightResult(text)
	if err != nil {
		s.log.WarnContext(ctx, "failed to parse ai response, returning fallback analysis", logger.ErrorField(err))
		return fallbackResult(portfolio)
	}

	reconcile(result, portfolio)
	return result
}

// parseInsightResult strips any surrounding code fence the model may
// have added and decodes the remainder.
func parseInsightResult(text string) (*model.InsightResult, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result model.InsightResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("invalid insight payload: %w", err)
	}
	return &result, nil
}

// reconcile enforces the exactly-once invariant for portfolio
// symbols: duplicates of a held symbol are dropped (first entry
// wins) and a neutral placeholder is appended for every held symbol
// the provider skipped. Entries for symbols outside the portfolio
// are kept as-is.
func reconcile(result *model.InsightResult, portfolio []model.PortfolioStock) {
	held := make(map[string]bool, len(portfolio))
	for _, stock := range portfolio {
		held[stock.Symbol] = true
	}

	seen := make(map[string]bool, len(result.StockAnalysis))
	deduped := result.StockAnalysis[:0]
	for _, analysis := range result.StockAnalysis {
		if held[analysis.Symbol] && seen[analysis.Symbol] {
			continue
		}
		seen[analysis.Symbol] = true
		deduped = append(deduped, analysis)
	}
	result.StockAnalysis = deduped

	for _, stock := range portfolio {
		if seen[stock.Symbol] {
			continue
		}
		result.StockAnalysis = append(result.StockAnalysis, model.StockInsight{
			Symbol:     stock.Symbol,
			Impact:     model.SentimentNeutral,
			Confidence: placeholderConfidence,
			Reasoning:  placeholderReasoning,
		})
	}
}

// fallbackResult needs nothing beyond the symbol list, so it is
// always constructible.
func fallbackResult(portfolio []model.PortfolioStock) *model.InsightResult {
	stockAnalysis := make([]model.StockInsight, 0, len(portfolio))
	for _, stock := range portfolio {
		stockAnalysis = append(stockAnalysis, model.StockInsight{
			Symbol:     stock.Symbol,
			Impact:     model.SentimentNeutral,
			Confidence: placeholderConfidence,
			Reasoning:  fallbackReasoning,
		})
	}

	return &model.InsightResult{
		OverallSentiment: model.SentimentNeutral,
		ConfidenceScore:  fallbackConfidence,
		Summary:          fallbackSummary,
		StockAnalysis:    stockAnalysis,
		MarketSentiment:  fallbackMarketSentiment,
		Recommendations:  append([]string{}, fallbackRecommendations...),
	}
}
