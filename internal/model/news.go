package model

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NewsItem is a single article in the feed. Items are immutable once
// seeded, the API only ever hands out copies.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt string    `json:"publishedAt"`
	Sentiment   Sentiment `json:"sentiment"`
	Tags        []string  `json:"tags"`
}
