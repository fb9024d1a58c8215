package domain

// Settings is the runtime-mutable economy configuration. Currency is the
// single process-wide currency name; renaming it is a global ledger
// migration, never a per-account operation.
type Settings struct {
	Currency  string `json:"currency"`
	Locale    string `json:"locale"`
	RewardMin int    `json:"reward_min"`
	RewardMax int    `json:"reward_max"`
}

// DefaultSettings mirrors the defaults the original server data file was
// initialized with.
func DefaultSettings() Settings {
	return Settings{
		Currency:  "Coins",
		Locale:    "en-US",
		RewardMin: 100,
		RewardMax: 500,
	}
}
