package handler

import (
	"strconv"

	"game-economy-service/internal/adapter/http/dto"
	"game-economy-service/internal/core/ports"
	"game-economy-service/pkg/apperror"
	"game-economy-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles the ranked balance view endpoints.
type LeaderboardHandler struct {
	leaderboardSvc ports.LeaderboardService
	ledger         ports.Ledger
	gridPageSize   int
}

// NewLeaderboardHandler creates a new LeaderboardHandler. gridPageSize is the
// page size selected by view=grid when the caller gives no explicit size.
func NewLeaderboardHandler(leaderboardSvc ports.LeaderboardService, ledger ports.Ledger, gridPageSize int) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardSvc: leaderboardSvc,
		ledger:         ledger,
		gridPageSize:   gridPageSize,
	}
}

// GetPage handles GET /api/v1/leaderboard?page=&size=&view=. An explicit size
// wins; otherwise view=grid pages at the grid size and anything else falls
// through to the service default.
func (h *LeaderboardHandler) GetPage(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, apperror.Validation("page must be an integer"))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "0"))
	if err != nil {
		response.Error(c, apperror.Validation("size must be an integer"))
		return
	}
	if size <= 0 && c.Query("view") == "grid" {
		size = h.gridPageSize
	}

	result := h.leaderboardSvc.Page(page, size)

	entries := make([]dto.LeaderboardEntryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, dto.LeaderboardEntryResponse{
			Rank:      e.Rank,
			AccountID: e.AccountID.String(),
			Balance:   e.Balance,
		})
	}

	pageSize := size
	if pageSize <= 0 && len(entries) > 0 {
		pageSize = len(entries)
	}

	response.OK(c, dto.LeaderboardPageResponse{
		Entries:    entries,
		Page:       result.Page,
		PageSize:   pageSize,
		TotalPages: result.TotalPages,
		Total:      result.Total,
		Currency:   h.ledger.Currency(),
	})
}

// GetRank handles GET /api/v1/leaderboard/rank/:id.
func (h *LeaderboardHandler) GetRank(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	rank, ranked := h.leaderboardSvc.Rank(id)
	if !ranked {
		response.Error(c, apperror.ErrAccountNotRanked())
		return
	}

	response.OK(c, dto.RankResponse{
		AccountID: id.String(),
		Rank:      rank,
		Balance:   h.ledger.GetBalance(id),
	})
}
