package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"game-economy-service/internal/adapter/http/dto"
	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports/mocks"
	"game-economy-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAdminAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "admin", "password123").Return("jwt_token", expiry, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, dto.LoginRequest{Username: "admin", Password: "password123"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt_token", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAdminAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAdminAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		jsonBody(t, dto.LoginRequest{Username: "admin", Password: "wrong"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Economy Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewEconomyHandler(mockLedger, mocks.NewMockRewardService(ctrl), mocks.NewMockSettingsService(ctrl))

	accountID := uuid.New()
	mockLedger.EXPECT().GetBalance(accountID).Return(150.0)
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID.String()+"/balance", nil)
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, accountID.String(), data["account_id"])
	assert.Equal(t, 150.0, data["balance"])
	assert.Equal(t, "Coins", data["currency"])
}

func TestGetBalance_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEconomyHandler(mocks.NewMockLedger(ctrl), mocks.NewMockRewardService(ctrl), mocks.NewMockSettingsService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/not-a-uuid/balance", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetBalance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewEconomyHandler(mockLedger, mocks.NewMockRewardService(ctrl), mocks.NewMockSettingsService(ctrl))

	from := uuid.New()
	to := uuid.New()
	mockLedger.EXPECT().Transfer(from, to, 25.0).Return(nil)
	mockLedger.EXPECT().GetBalance(from).Return(75.0)
	mockLedger.EXPECT().GetBalance(to).Return(125.0)
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/transfers",
		jsonBody(t, dto.TransferRequest{From: from.String(), To: to.String(), Amount: 25}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, 75.0, data["from_balance"])
	assert.Equal(t, 125.0, data["to_balance"])
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewEconomyHandler(mockLedger, mocks.NewMockRewardService(ctrl), mocks.NewMockSettingsService(ctrl))

	from := uuid.New()
	to := uuid.New()
	mockLedger.EXPECT().Transfer(from, to, 9999.0).Return(apperror.ErrInsufficientFunds())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/transfers",
		jsonBody(t, dto.TransferRequest{From: from.String(), To: to.String(), Amount: 9999}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Transfer(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestTransfer_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEconomyHandler(mocks.NewMockLedger(ctrl), mocks.NewMockRewardService(ctrl), mocks.NewMockSettingsService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/transfers",
		jsonBody(t, dto.TransferRequest{From: uuid.NewString(), To: uuid.NewString(), Amount: -5}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimDaily_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	mockRewards := mocks.NewMockRewardService(ctrl)
	h := NewEconomyHandler(mockLedger, mockRewards, mocks.NewMockSettingsService(ctrl))

	accountID := uuid.New()
	mockRewards.EXPECT().Claim(accountID, gomock.Any()).Return(250.0, nil)
	mockLedger.EXPECT().GetBalance(accountID).Return(400.0)
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountID.String()+"/claim-daily", nil)
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.ClaimDaily(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, 250.0, data["amount"])
	assert.Equal(t, 400.0, data["balance"])
}

func TestClaimDaily_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRewards := mocks.NewMockRewardService(ctrl)
	h := NewEconomyHandler(mocks.NewMockLedger(ctrl), mockRewards, mocks.NewMockSettingsService(ctrl))

	accountID := uuid.New()
	mockRewards.EXPECT().Claim(accountID, gomock.Any()).Return(0.0, apperror.ErrAlreadyClaimedToday())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+accountID.String()+"/claim-daily", nil)
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.ClaimDaily(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Leaderboard Handler Tests ---

func TestLeaderboardGetPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLB := mocks.NewMockLeaderboardService(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewLeaderboardHandler(mockLB, mockLedger, 45)

	first := uuid.New()
	second := uuid.New()
	mockLB.EXPECT().Page(1, 10).Return(domain.LeaderboardPage{
		Entries: []domain.LeaderboardEntry{
			{AccountID: first, Balance: 200, Rank: 1},
			{AccountID: second, Balance: 100, Rank: 2},
		},
		Page:       1,
		TotalPages: 1,
		Total:      2,
	})
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?page=1&size=10", nil)

	h.GetPage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	entries := data["entries"].([]interface{})
	require.Len(t, entries, 2)
	top := entries[0].(map[string]interface{})
	assert.Equal(t, first.String(), top["account_id"])
	assert.Equal(t, float64(1), top["rank"])
}

func TestLeaderboardGetPage_GridView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLB := mocks.NewMockLeaderboardService(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewLeaderboardHandler(mockLB, mockLedger, 45)

	mockLB.EXPECT().Page(1, 45).Return(domain.LeaderboardPage{
		Entries:    []domain.LeaderboardEntry{},
		Page:       1,
		TotalPages: 1,
		Total:      0,
	})
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?view=grid", nil)

	h.GetPage(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardGetPage_GridViewExplicitSizeWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLB := mocks.NewMockLeaderboardService(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewLeaderboardHandler(mockLB, mockLedger, 45)

	mockLB.EXPECT().Page(1, 5).Return(domain.LeaderboardPage{
		Entries:    []domain.LeaderboardEntry{},
		Page:       1,
		TotalPages: 1,
		Total:      0,
	})
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?view=grid&size=5", nil)

	h.GetPage(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardGetPage_BadQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLeaderboardHandler(mocks.NewMockLeaderboardService(ctrl), mocks.NewMockLedger(ctrl), 45)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?page=abc", nil)

	h.GetPage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboardGetRank_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLB := mocks.NewMockLeaderboardService(ctrl)
	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewLeaderboardHandler(mockLB, mockLedger, 45)

	accountID := uuid.New()
	mockLB.EXPECT().Rank(accountID).Return(3, true)
	mockLedger.EXPECT().GetBalance(accountID).Return(50.0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/rank/"+accountID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.GetRank(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(3), data["rank"])
}

func TestLeaderboardGetRank_NotRanked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLB := mocks.NewMockLeaderboardService(ctrl)
	h := NewLeaderboardHandler(mockLB, mocks.NewMockLedger(ctrl), 45)

	accountID := uuid.New()
	mockLB.EXPECT().Rank(accountID).Return(0, false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard/rank/"+accountID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.GetRank(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin Handler Tests ---

type stubFlusher struct {
	err   error
	calls int
}

func (f *stubFlusher) Flush(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestAdminSetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewAdminHandler(mockLedger, mocks.NewMockSettingsService(ctrl), &stubFlusher{})

	accountID := uuid.New()
	mockLedger.EXPECT().SetBalance(accountID, 500.0).Return(nil)
	mockLedger.EXPECT().GetBalance(accountID).Return(500.0)
	mockLedger.EXPECT().Currency().Return("Coins")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/admin/accounts/"+accountID.String()+"/balance",
		jsonBody(t, dto.SetBalanceRequest{Amount: 500}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.SetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, 500.0, data["balance"])
}

func TestAdminDebit_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewAdminHandler(mockLedger, mocks.NewMockSettingsService(ctrl), &stubFlusher{})

	accountID := uuid.New()
	mockLedger.EXPECT().SubtractBalance(accountID, 1000.0).Return(false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/accounts/"+accountID.String()+"/debit",
		jsonBody(t, dto.AdjustBalanceRequest{Amount: 1000}))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: accountID.String()}}

	h.Debit(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestAdminSetCurrency_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := mocks.NewMockSettingsService(ctrl)
	h := NewAdminHandler(mocks.NewMockLedger(ctrl), mockSettings, &stubFlusher{})

	mockSettings.EXPECT().SetCurrency(gomock.Any(), "Gems").Return(nil)
	mockSettings.EXPECT().Settings().Return(domain.Settings{
		Currency: "Gems", Locale: "en-US", RewardMin: 100, RewardMax: 500,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings/currency",
		jsonBody(t, dto.SetCurrencyRequest{Name: "Gems"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SetCurrency(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "Gems", data["currency"])
}

func TestAdminSetRewardRange_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := mocks.NewMockSettingsService(ctrl)
	h := NewAdminHandler(mocks.NewMockLedger(ctrl), mockSettings, &stubFlusher{})

	mockSettings.EXPECT().SetRewardRange(gomock.Any(), 500, 100).Return(apperror.ErrInvalidRewardRange())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings/reward-range",
		jsonBody(t, dto.SetRewardRangeRequest{Min: 500, Max: 100}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SetRewardRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminFlush_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flusher := &stubFlusher{}
	h := NewAdminHandler(mocks.NewMockLedger(ctrl), mocks.NewMockSettingsService(ctrl), flusher)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/flush", nil)

	h.Flush(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, flusher.calls)
}

func TestAdminFlush_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flusher := &stubFlusher{err: assert.AnError}
	h := NewAdminHandler(mocks.NewMockLedger(ctrl), mocks.NewMockSettingsService(ctrl), flusher)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/flush", nil)

	h.Flush(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
