package handler

import (
	"game-economy-service/internal/adapter/http/dto"
	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
	"game-economy-service/pkg/apperror"
	"game-economy-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EconomyHandler handles balance, transfer, and daily reward endpoints.
type EconomyHandler struct {
	ledger      ports.Ledger
	rewardSvc   ports.RewardService
	settingsSvc ports.SettingsService
}

// NewEconomyHandler creates a new EconomyHandler.
func NewEconomyHandler(ledger ports.Ledger, rewardSvc ports.RewardService, settingsSvc ports.SettingsService) *EconomyHandler {
	return &EconomyHandler{
		ledger:      ledger,
		rewardSvc:   rewardSvc,
		settingsSvc: settingsSvc,
	}
}

// accountID parses the :id path parameter.
func accountID(c *gin.Context) (domain.AccountID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("account id must be a valid UUID"))
		return domain.AccountID{}, false
	}
	return id, true
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (h *EconomyHandler) GetBalance(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   h.ledger.GetBalance(id),
		Currency:  h.ledger.Currency(),
	})
}

// Transfer handles POST /api/v1/transfers.
func (h *EconomyHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	from, err := uuid.Parse(req.From)
	if err != nil {
		response.Error(c, apperror.Validation("from must be a valid UUID"))
		return
	}
	to, err := uuid.Parse(req.To)
	if err != nil {
		response.Error(c, apperror.Validation("to must be a valid UUID"))
		return
	}

	if err := h.ledger.Transfer(from, to, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{
		From:        from.String(),
		To:          to.String(),
		Amount:      req.Amount,
		FromBalance: h.ledger.GetBalance(from),
		ToBalance:   h.ledger.GetBalance(to),
		Currency:    h.ledger.Currency(),
	})
}

// ClaimDaily handles POST /api/v1/accounts/:id/claim-daily.
func (h *EconomyHandler) ClaimDaily(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	amount, err := h.rewardSvc.Claim(id, domain.Today())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{
		AccountID: id.String(),
		Amount:    amount,
		Balance:   h.ledger.GetBalance(id),
		Currency:  h.ledger.Currency(),
	})
}
