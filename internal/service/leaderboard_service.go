package service

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
)

// SortBalances turns a ledger snapshot into the fully ranked view: descending
// by balance, ties broken by account id ascending so repeated calls over the
// same snapshot page identically.
func SortBalances(snapshot map[domain.AccountID]float64) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(snapshot))
	for id, balance := range snapshot {
		entries = append(entries, domain.LeaderboardEntry{AccountID: id, Balance: balance})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return bytes.Compare(entries[i].AccountID[:], entries[j].AccountID[:]) < 0
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Paginate slices the ranked view into one page. The page number is clamped
// into [1, totalPages]; an empty view yields one empty page, never an error.
func Paginate(entries []domain.LeaderboardEntry, page, pageSize int) domain.LeaderboardPage {
	n := len(entries)
	totalPages := (n + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}

	return domain.LeaderboardPage{
		Entries:    entries[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      n,
	}
}

// LeaderboardServiceImpl implements ports.LeaderboardService over ledger
// snapshots. With cacheTTL == 0 every call recomputes the ranking
// synchronously and is always consistent with the ledger; a positive TTL
// reuses the last sorted view within the staleness window, which is a
// presentation policy, not part of the ranking contract.
type LeaderboardServiceImpl struct {
	ledger          ports.Ledger
	defaultPageSize int
	cacheTTL        time.Duration

	mu         sync.Mutex
	cached     []domain.LeaderboardEntry
	computedAt time.Time
}

// NewLeaderboardService creates a leaderboard over the given ledger.
// defaultPageSize is used when a caller passes pageSize <= 0.
func NewLeaderboardService(ledger ports.Ledger, defaultPageSize int, cacheTTL time.Duration) *LeaderboardServiceImpl {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &LeaderboardServiceImpl{
		ledger:          ledger,
		defaultPageSize: defaultPageSize,
		cacheTTL:        cacheTTL,
	}
}

// Rank returns the 1-based position of the account in the ranked view, or
// false if the account holds no recorded balance.
func (s *LeaderboardServiceImpl) Rank(id domain.AccountID) (int, bool) {
	for _, e := range s.sorted() {
		if e.AccountID == id {
			return e.Rank, true
		}
	}
	return 0, false
}

// Page returns one page of the ranked view.
func (s *LeaderboardServiceImpl) Page(page, pageSize int) domain.LeaderboardPage {
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	return Paginate(s.sorted(), page, pageSize)
}

func (s *LeaderboardServiceImpl) sorted() []domain.LeaderboardEntry {
	if s.cacheTTL <= 0 {
		return SortBalances(s.ledger.Snapshot())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || time.Since(s.computedAt) >= s.cacheTTL {
		s.cached = SortBalances(s.ledger.Snapshot())
		s.computedAt = time.Now()
	}
	return s.cached
}
