package model

// Stock is an entry from the popular-stock catalog. Symbols follow the
// NSE uppercase convention.
type Stock struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"currentPrice"`
}

// PortfolioStock is a held position. A portfolio carries at most one
// entry per symbol, adding the same symbol again increments Quantity.
type PortfolioStock struct {
	Stock
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Portfolio is the ordered set of holdings for one session. Order is
// insertion order and is preserved across quantity updates.
type Portfolio struct {
	SessionID string           `json:"sessionId"`
	Stocks    []PortfolioStock `json:"stocks"`
}
