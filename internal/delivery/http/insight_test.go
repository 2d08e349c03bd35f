package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-insights/config"
	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"
	"portfolio-insights/internal/service"
	"portfolio-insights/pkg/cache"
	"portfolio-insights/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(ctx context.Context, system string, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestServer(gen repository.TextGenerator) *echo.Echo {
	e := echo.New()
	log := &logger.Logger{Logger: zap.NewNop()}
	cfg := &config.Config{
		Portfolio: config.PortfolioConfig{SessionTTL: time.Hour},
	}

	newsRepo := repository.NewNewsRepository()
	stockRepo := repository.NewStockRepository()
	portfolioRepo := repository.NewPortfolioRepository(cfg, cache.NewCache(time.Hour, time.Hour))

	svc := &service.Service{
		NewsService:      service.NewNewsService(log, newsRepo),
		StockService:     service.NewStockService(stockRepo),
		PortfolioService: service.NewPortfolioService(log, portfolioRepo, stockRepo),
		InsightService:   service.NewInsightService(cfg, log, gen),
	}

	handler := NewHttpAPIHandler(context.Background(), e, goValidator.New(), svc)
	handler.SetupRoutes()
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyze_RejectsMissingPortfolio(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})

	tests := []struct {
		name string
		body string
	}{
		{name: "no portfolio field", body: `{"news": []}`},
		{name: "empty portfolio", body: `{"portfolio": [], "news": []}`},
		{name: "not json", body: `portfolio=TCS`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/v1/analyze", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Portfolio data is required", resp["error"])
		})
	}
}

func TestAnalyze_ReturnsFallbackWhenProviderUnavailable(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})

	body := `{
		"portfolio": [{"symbol": "TCS", "name": "Tata Consultancy Services", "quantity": 2, "price": 3678.9}],
		"news": []
	}`
	rec := doRequest(e, http.MethodPost, "/api/v1/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.InsightResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.SentimentNeutral, result.OverallSentiment)
	assert.Equal(t, 60, result.ConfidenceScore)
	require.Len(t, result.StockAnalysis, 1)
	assert.Equal(t, "TCS", result.StockAnalysis[0].Symbol)
	assert.Equal(t, model.SentimentNeutral, result.StockAnalysis[0].Impact)
	assert.Equal(t, 50, result.StockAnalysis[0].Confidence)
}

func TestAnalyze_ReturnsParsedProviderResult(t *testing.T) {
	e := newTestServer(&stubGenerator{text: `{
		"overallSentiment": "positive",
		"confidenceScore": 88,
		"summary": "Cloud deal is a tailwind",
		"stockAnalysis": [
			{"symbol": "TCS", "impact": "positive", "confidence": 85, "reasoning": "Large multi-year deal"}
		],
		"marketSentiment": "Positive",
		"recommendations": ["Hold TCS"]
	}`})

	body := `{
		"portfolio": [{"symbol": "TCS", "quantity": 2, "price": 3678.9}],
		"news": [{"id": "2", "title": "TCS Announces Major Cloud Computing Deal", "content": "...", "tags": ["TCS", "cloud"]}]
	}`
	rec := doRequest(e, http.MethodPost, "/api/v1/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.InsightResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.SentimentPositive, result.OverallSentiment)
	assert.Equal(t, 88, result.ConfidenceScore)
}
