package model

// StockInsight is the per-holding slice of an analysis result.
type StockInsight struct {
	Symbol     string    `json:"symbol"`
	Impact     Sentiment `json:"impact"`
	Confidence int       `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
}

// InsightResult is the structured outcome of one analysis run, either
// parsed from the AI provider or synthesized as the neutral fallback.
// After reconciliation every portfolio symbol appears exactly once in
// StockAnalysis; extra symbols the provider volunteered are kept.
type InsightResult struct {
	OverallSentiment Sentiment      `json:"overallSentiment"`
	ConfidenceScore  int            `json:"confidenceScore"`
	Summary          string         `json:"summary"`
	StockAnalysis    []StockInsight `json:"stockAnalysis"`
	MarketSentiment  string         `json:"marketSentiment"`
	Recommendations  []string       `json:"recommendations"`
}
