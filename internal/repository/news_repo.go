package repository

import "portfolio-insights/internal/model"

type NewsRepository interface {
	GetAll() []model.NewsItem
}

// staticNewsRepository serves the seeded market feed. There is no
// live ingestion, the catalog is fixed at construction.
type staticNewsRepository struct {
	items []model.NewsItem
}

func NewNewsRepository() NewsRepository {
	return &staticNewsRepository{items: seedNews}
}

// NewNewsRepositoryWithItems injects a custom catalog, used by tests.
func NewNewsRepositoryWithItems(items []model.NewsItem) NewsRepository {
	return &staticNewsRepository{items: items}
}

func (r *staticNewsRepository) GetAll() []model.NewsItem {
	out := make([]model.NewsItem, len(r.items))
	copy(out, r.items)
	return out
}

var seedNews = []model.NewsItem{
	{
		ID:          "1",
		Title:       "Reliance Industries Reports Strong Q3 Results, Beats Estimates",
		Content:     "Reliance Industries Ltd reported better-than-expected quarterly results driven by strong performance in its retail and digital services segments. The company's consolidated net profit rose 15% year-on-year.",
		Source:      "Economic Times",
		URL:         "https://economictimes.indiatimes.com",
		PublishedAt: "2 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"RELIANCE", "earnings", "retail", "digital"},
	},
	{
		ID:          "2",
		Title:       "TCS Announces Major Cloud Computing Deal Worth $2.5 Billion",
		Content:     "Tata Consultancy Services has secured a multi-year cloud transformation deal with a major European bank. This deal is expected to boost TCS's revenue growth in the coming quarters.",
		Source:      "Moneycontrol",
		URL:         "https://moneycontrol.com",
		PublishedAt: "4 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"TCS", "cloud", "deal", "technology"},
	},
	{
		ID:          "3",
		Title:       "HDFC Bank Faces Regulatory Scrutiny Over Digital Banking Issues",
		Content:     "HDFC Bank is under regulatory review following recent digital banking outages that affected millions of customers. The bank has assured quick resolution of technical issues.",
		Source:      "Business Standard",
		URL:         "https://business-standard.com",
		PublishedAt: "6 hours ago",
		Sentiment:   model.SentimentNegative,
		Tags:        []string{"HDFCBANK", "regulatory", "digital", "banking"},
	},
	{
		ID:          "4",
		Title:       "Infosys Raises FY24 Revenue Guidance Amid Strong Demand",
		Content:     "Infosys has raised its revenue guidance for FY24 citing strong demand across all business segments. The company expects revenue growth of 13-15% in constant currency terms.",
		Source:      "Economic Times",
		URL:         "https://economictimes.indiatimes.com",
		PublishedAt: "8 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"INFY", "guidance", "revenue", "growth"},
	},
	{
		ID:          "5",
		Title:       "Adani Group Stocks Rally After Debt Reduction Announcement",
		Content:     "Adani Group stocks surged after the conglomerate announced plans to reduce debt by $2.5 billion through asset sales and improved cash flows from operations.",
		Source:      "Moneycontrol",
		URL:         "https://moneycontrol.com",
		PublishedAt: "10 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"ADANIPORTS", "debt", "rally", "financial"},
	},
	{
		ID:          "6",
		Title:       "ITC Reports Decline in Cigarette Sales Due to Tax Hikes",
		Content:     "ITC Ltd reported a decline in cigarette volumes following recent tax increases. However, the company's FMCG and hotel businesses showed strong growth.",
		Source:      "Business Standard",
		URL:         "https://business-standard.com",
		PublishedAt: "12 hours ago",
		Sentiment:   model.SentimentNeutral,
		Tags:        []string{"ITC", "cigarettes", "tax", "FMCG"},
	},
	{
		ID:          "7",
		Title:       "Wipro Wins $500M Digital Transformation Contract",
		Content:     "Wipro has secured a major digital transformation contract worth $500 million from a Fortune 500 company. The deal spans five years and covers cloud migration and AI implementation.",
		Source:      "Economic Times",
		URL:         "https://economictimes.indiatimes.com",
		PublishedAt: "14 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"WIPRO", "contract", "digital", "AI"},
	},
	{
		ID:          "8",
		Title:       "Bharti Airtel 5G Network Expansion Accelerates",
		Content:     "Bharti Airtel has accelerated its 5G network rollout, covering 3,000 cities and towns. The company expects to complete pan-India 5G coverage by March 2024.",
		Source:      "Moneycontrol",
		URL:         "https://moneycontrol.com",
		PublishedAt: "16 hours ago",
		Sentiment:   model.SentimentPositive,
		Tags:        []string{"BHARTIARTL", "5G", "network", "expansion"},
	},
}
