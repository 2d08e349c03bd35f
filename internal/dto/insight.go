package dto

import "portfolio-insights/internal/model"

// AnalyzeRequest carries the portfolio and the already-filtered news
// the analysis should consider. The portfolio must not be empty, the
// news list may be.
type AnalyzeRequest struct {
	Portfolio []model.PortfolioStock `json:"portfolio" validate:"required,min=1"`
	News      []model.NewsItem       `json:"news"`
}
