package domain

// LeaderboardEntry is one row of the ranked balance view.
type LeaderboardEntry struct {
	AccountID AccountID `json:"account_id"`
	Balance   float64   `json:"balance"`
	Rank      int       `json:"rank"` // 1-based global position
}

// LeaderboardPage is one page of the ranked view, derived on read from a
// ledger snapshot. It is never stored.
type LeaderboardPage struct {
	Entries    []LeaderboardEntry `json:"entries"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Total      int                `json:"total"` // number of ranked accounts
}
