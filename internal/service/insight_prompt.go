package service

import (
	"fmt"
	"strings"

	"portfolio-insights/internal/model"
)

const analysisSystemInstruction = "You are an expert financial analyst specializing in Indian stock markets. " +
	"Provide accurate, data-driven insights based on news analysis. Always respond with valid JSON format."

// buildAnalysisPrompt renders the portfolio and news into the user
// prompt. Prompt size grows linearly with the news volume and is not
// capped.
func buildAnalysisPrompt(portfolio []model.PortfolioStock, news []model.NewsItem) string {
	symbols := make([]string, 0, len(portfolio))
	for _, stock := range portfolio {
		symbols = append(symbols, stock.Symbol)
	}

	newsContent := make([]string, 0, len(news))
	for _, item := range news {
		newsContent = append(newsContent, fmt.Sprintf("%s: %s", item.Title, item.Content))
	}

	var sb strings.Builder

	sb.WriteString("As a financial analyst, analyze the impact of recent news on this Indian stock portfolio:\n\n")
	sb.WriteString(fmt.Sprintf("Portfolio Holdings: %s\n\n", strings.Join(symbols, ", ")))
	sb.WriteString("Recent News:\n")
	sb.WriteString(strings.Join(newsContent, "\n\n"))

	sb.WriteString(`

Please provide a comprehensive analysis in the following JSON format:
{
  "overallSentiment": "positive|negative|neutral",
  "confidenceScore": 85,
  "summary": "Brief overall impact summary",
  "stockAnalysis": [
    {
      "symbol": "STOCK_SYMBOL",
      "impact": "positive|negative|neutral",
      "confidence": 80,
      "reasoning": "Detailed reasoning for this stock"
    }
  ],
  "marketSentiment": "Overall market sentiment description",
  "recommendations": ["Actionable recommendation 1", "Actionable recommendation 2"]
}

Focus on:
1. How each news item affects the specific stocks in the portfolio
2. Overall market sentiment and its impact
3. Confidence levels based on news relevance and clarity
4. Actionable recommendations for portfolio management
`)

	return sb.String()
}
