package dto

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

// TransferRequest is the request body for moving funds between accounts.
type TransferRequest struct {
	From   string  `json:"from" binding:"required,uuid"`
	To     string  `json:"to" binding:"required,uuid"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// TransferResponse is the response body for a completed transfer.
type TransferResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Amount      float64 `json:"amount"`
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
	Currency    string  `json:"currency"`
}

// ClaimResponse is the response body for a successful daily reward claim.
type ClaimResponse struct {
	AccountID string  `json:"account_id"`
	Amount    float64 `json:"amount"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

// LeaderboardEntryResponse is one row of the leaderboard.
type LeaderboardEntryResponse struct {
	Rank      int     `json:"rank"`
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
}

// LeaderboardPageResponse wraps one page of the ranked view.
type LeaderboardPageResponse struct {
	Entries    []LeaderboardEntryResponse `json:"entries"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
	TotalPages int                        `json:"total_pages"`
	Total      int                        `json:"total"`
	Currency   string                     `json:"currency"`
}

// RankResponse is the response for a single account's rank query.
type RankResponse struct {
	AccountID string  `json:"account_id"`
	Rank      int     `json:"rank"`
	Balance   float64 `json:"balance"`
}

// SetBalanceRequest is the admin request body for overwriting a balance.
type SetBalanceRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

// AdjustBalanceRequest is the admin request body for credit and debit.
type AdjustBalanceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SetCurrencyRequest is the admin request body for renaming the currency.
type SetCurrencyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=32,currency_name"`
}

// SetRewardRangeRequest is the admin request body for the daily reward range.
type SetRewardRangeRequest struct {
	Min int `json:"min" binding:"gte=0"`
	Max int `json:"max" binding:"gte=0"`
}

// SetLocaleRequest is the admin request body for the display locale.
type SetLocaleRequest struct {
	Tag string `json:"tag" binding:"required"`
}

// SettingsResponse is the response for the current economy settings.
type SettingsResponse struct {
	Currency  string `json:"currency"`
	Locale    string `json:"locale"`
	RewardMin int    `json:"reward_min"`
	RewardMax int    `json:"reward_max"`
}
