package repository

import (
	"fmt"

	"portfolio-insights/config"
	"portfolio-insights/internal/model"
	"portfolio-insights/pkg/cache"
)

// PortfolioRepository keeps per-session holdings in the in-memory
// cache. Sessions expire with the configured TTL, nothing is ever
// written to durable storage.
type PortfolioRepository interface {
	Get(sessionID string) *model.Portfolio
	Save(portfolio *model.Portfolio)
	Delete(sessionID string)
}

type cachePortfolioRepository struct {
	cfg   *config.Config
	cache cache.Cache
}

func NewPortfolioRepository(cfg *config.Config, c cache.Cache) PortfolioRepository {
	return &cachePortfolioRepository{cfg: cfg, cache: c}
}

func portfolioKey(sessionID string) string {
	return fmt.Sprintf("portfolio:%s", sessionID)
}

// Get returns the session portfolio, or an empty one when the session
// is unknown or expired. An absent session and an empty portfolio are
// indistinguishable on purpose.
func (r *cachePortfolioRepository) Get(sessionID string) *model.Portfolio {
	val, found := r.cache.Get(portfolioKey(sessionID))
	if !found {
		return &model.Portfolio{SessionID: sessionID}
	}

	portfolio, ok := val.(*model.Portfolio)
	if !ok {
		return &model.Portfolio{SessionID: sessionID}
	}
	return portfolio
}

func (r *cachePortfolioRepository) Save(portfolio *model.Portfolio) {
	r.cache.Set(portfolioKey(portfolio.SessionID), portfolio, r.cfg.Portfolio.SessionTTL)
}

func (r *cachePortfolioRepository) Delete(sessionID string) {
	r.cache.Delete(portfolioKey(sessionID))
}
