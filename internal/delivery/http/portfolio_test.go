package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"portfolio-insights/internal/dto"
	"portfolio-insights/internal/model"
	"portfolio-insights/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var data T
	require.NoError(t, json.Unmarshal(raw, &data))
	return data
}

func TestPortfolioFlow(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})
	session := "sess-flow"

	// empty session starts with no holdings and no filtered news
	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/portfolio/%s", session), "")
	require.Equal(t, http.StatusOK, rec.Code)
	portfolio := decodeData[model.Portfolio](t, rec.Body.Bytes())
	assert.Empty(t, portfolio.Stocks)

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/portfolio/%s/news", session), "")
	require.Equal(t, http.StatusOK, rec.Code)
	news := decodeData[[]model.NewsItem](t, rec.Body.Bytes())
	assert.Empty(t, news)

	// add TCS, filtered news now surfaces the TCS article
	rec = doRequest(e, http.MethodPost, fmt.Sprintf("/api/v1/portfolio/%s/stocks", session),
		`{"symbol": "TCS", "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	portfolio = decodeData[model.Portfolio](t, rec.Body.Bytes())
	require.Len(t, portfolio.Stocks, 1)
	assert.Equal(t, "TCS", portfolio.Stocks[0].Symbol)

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/portfolio/%s/news", session), "")
	news = decodeData[[]model.NewsItem](t, rec.Body.Bytes())
	require.Len(t, news, 1)
	assert.Contains(t, news[0].Title, "TCS")

	// update quantity, then remove
	rec = doRequest(e, http.MethodPut, fmt.Sprintf("/api/v1/portfolio/%s/stocks/TCS", session),
		`{"quantity": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	portfolio = decodeData[model.Portfolio](t, rec.Body.Bytes())
	assert.Equal(t, 5, portfolio.Stocks[0].Quantity)

	rec = doRequest(e, http.MethodDelete, fmt.Sprintf("/api/v1/portfolio/%s/stocks/TCS", session), "")
	require.Equal(t, http.StatusOK, rec.Code)
	portfolio = decodeData[model.Portfolio](t, rec.Body.Bytes())
	assert.Empty(t, portfolio.Stocks)
}

func TestPortfolio_AddStockValidation(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing symbol", body: `{"quantity": 2}`},
		{name: "zero quantity", body: `{"symbol": "TCS", "quantity": 0}`},
		{name: "negative quantity", body: `{"symbol": "TCS", "quantity": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/v1/portfolio/sess-x/stocks", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPortfolio_UpdateUnknownSymbol(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})

	rec := doRequest(e, http.MethodPut, "/api/v1/portfolio/sess-x/stocks/WIPRO", `{"quantity": 3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNewsAndStocks(t *testing.T) {
	e := newTestServer(&stubGenerator{err: repository.ErrMissingAPIKey})

	rec := doRequest(e, http.MethodGet, "/api/v1/news", "")
	require.Equal(t, http.StatusOK, rec.Code)
	news := decodeData[[]model.NewsItem](t, rec.Body.Bytes())
	assert.Len(t, news, 8)

	rec = doRequest(e, http.MethodGet, "/api/v1/stocks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stocks := decodeData[[]model.Stock](t, rec.Body.Bytes())
	assert.Len(t, stocks, 8)
}
