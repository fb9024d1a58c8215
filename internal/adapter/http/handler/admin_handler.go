package handler

import (
	"context"

	"game-economy-service/internal/adapter/http/dto"
	"game-economy-service/internal/core/ports"
	"game-economy-service/pkg/apperror"
	"game-economy-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// Flusher persists the in-memory economy state on demand.
type Flusher interface {
	Flush(ctx context.Context) error
}

// AdminHandler handles operator endpoints for balances and settings.
type AdminHandler struct {
	ledger      ports.Ledger
	settingsSvc ports.SettingsService
	flusher     Flusher
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledger ports.Ledger, settingsSvc ports.SettingsService, flusher Flusher) *AdminHandler {
	return &AdminHandler{
		ledger:      ledger,
		settingsSvc: settingsSvc,
		flusher:     flusher,
	}
}

// SetBalance handles PUT /api/v1/admin/accounts/:id/balance.
func (h *AdminHandler) SetBalance(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledger.SetBalance(id, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   h.ledger.GetBalance(id),
		Currency:  h.ledger.Currency(),
	})
}

// Credit handles POST /api/v1/admin/accounts/:id/credit.
func (h *AdminHandler) Credit(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.ledger.AddBalance(id, req.Amount)

	response.OK(c, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   h.ledger.GetBalance(id),
		Currency:  h.ledger.Currency(),
	})
}

// Debit handles POST /api/v1/admin/accounts/:id/debit.
func (h *AdminHandler) Debit(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if !h.ledger.SubtractBalance(id, req.Amount) {
		response.Error(c, apperror.ErrInsufficientFunds())
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   h.ledger.GetBalance(id),
		Currency:  h.ledger.Currency(),
	})
}

// GetSettings handles GET /api/v1/admin/settings.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	response.OK(c, toSettingsResponse(h.settingsSvc))
}

// SetCurrency handles PUT /api/v1/admin/settings/currency.
func (h *AdminHandler) SetCurrency(c *gin.Context) {
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.settingsSvc.SetCurrency(c.Request.Context(), req.Name); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(h.settingsSvc))
}

// SetRewardRange handles PUT /api/v1/admin/settings/reward-range.
func (h *AdminHandler) SetRewardRange(c *gin.Context) {
	var req dto.SetRewardRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.settingsSvc.SetRewardRange(c.Request.Context(), req.Min, req.Max); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(h.settingsSvc))
}

// SetLocale handles PUT /api/v1/admin/settings/locale.
func (h *AdminHandler) SetLocale(c *gin.Context) {
	var req dto.SetLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.settingsSvc.SetLocale(c.Request.Context(), req.Tag); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettingsResponse(h.settingsSvc))
}

// Flush handles POST /api/v1/admin/flush.
func (h *AdminHandler) Flush(c *gin.Context) {
	if err := h.flusher.Flush(c.Request.Context()); err != nil {
		response.Error(c, apperror.ErrStorageError(err))
		return
	}
	response.OK(c, gin.H{"flushed": true})
}

func toSettingsResponse(svc ports.SettingsService) dto.SettingsResponse {
	s := svc.Settings()
	return dto.SettingsResponse{
		Currency:  s.Currency,
		Locale:    s.Locale,
		RewardMin: s.RewardMin,
		RewardMax: s.RewardMax,
	}
}
