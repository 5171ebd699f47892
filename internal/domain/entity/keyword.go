package entity

// KeywordSuggestion is one result of a seed keyword search.
type KeywordSuggestion struct {
	Keyword       string  `json:"keyword" validate:"required"`
	MonthlySearch int     `json:"monthly_search" validate:"gte=0"`
	Competition   int     `json:"competition"`
	Priority      float64 `json:"priority"`
}

// KeywordTrackerRow is one row of the rank tracking table.
type KeywordTrackerRow struct {
	Keyword   string `json:"keyword"`
	Platform  string `json:"platform"`
	Rank      int    `json:"rank"`
	Change    int    `json:"change"`
	UpdatedAt string `json:"updated_at"`
}
