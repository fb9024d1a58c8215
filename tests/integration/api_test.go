package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "game-economy-service/internal/adapter/http/handler"
	fileStorage "game-economy-service/internal/adapter/storage/file"
	"game-economy-service/internal/core/domain"
	"game-economy-service/internal/core/ports"
	"game-economy-service/internal/service"
	"game-economy-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on the file backend in a temp
// directory. This exercises the real HTTP layer, middleware, handlers,
// services, and storage end-to-end.

const (
	testAdminUser     = "admin"
	testAdminPassword = "AdminPass123!"
)

type testApp struct {
	server       *httptest.Server
	dataDir      string
	store        *fileStorage.Store
	ledger       *service.LedgerServiceImpl
	checkpointer *service.Checkpointer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppInDir(t, t.TempDir())
}

func newTestAppInDir(t *testing.T, dir string) *testApp {
	t.Helper()

	log := logger.New("debug", false)

	store, err := fileStorage.NewStore(dir, log)
	require.NoError(t, err)

	initial := domain.DefaultSettings()
	if stored, err := store.LoadSettings(context.Background()); err == nil && stored != nil {
		initial = *stored
	}

	ledger := service.NewLedgerService(initial.Currency, log)
	settingsSvc := service.NewSettingsService(initial, store, ledger, log)
	rewardSvc := service.NewRewardService(ledger, settingsSvc, log)

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	ledger.BulkLoad(snap.Balances)
	rewardSvc.LoadClaims(snap.Claims)

	leaderboardSvc := service.NewLeaderboardService(ledger, 10, 0)

	hashSvc := service.NewArgon2HashService()
	passwordHash, err := hashSvc.Hash(testAdminPassword)
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("integration-test-secret-32bytes!", 24*time.Hour, "test-issuer")
	authSvc := service.NewAuthService(testAdminUser, passwordHash, hashSvc, tokenSvc)

	checkpointer := service.NewCheckpointer(store, ledger, rewardSvc, time.Minute, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		RewardSvc:      rewardSvc,
		LeaderboardSvc: leaderboardSvc,
		SettingsSvc:    settingsSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		Flusher:        checkpointer,
		HealthCheckers: []ports.HealthChecker{store},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:       server,
		dataDir:      dir,
		store:        store,
		ledger:       ledger,
		checkpointer: checkpointer,
	}
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, decodeData(t, resp)
}

func (a *testApp) postJSON(t *testing.T, path string, body any, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	return a.doJSON(t, http.MethodPost, path, body, token)
}

func (a *testApp) putJSON(t *testing.T, path string, body any, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	return a.doJSON(t, http.MethodPut, path, body, token)
}

func (a *testApp) doJSON(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp, decodeData(t, resp)
}

// decodeData unwraps the success envelope; returns nil for error responses.
func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return nil
	}
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", string(raw))
	data, _ := envelope["data"].(map[string]interface{})
	return data
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	resp, data := a.postJSON(t, "/api/v1/auth/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_LoginWrongCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.postJSON(t, "/api/v1/auth/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_AdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.postJSON(t, "/api/v1/admin/flush", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_BalanceAndTransferFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	alice := uuid.New()
	bob := uuid.New()

	// Unknown accounts read as zero.
	resp, data := app.get(t, "/api/v1/accounts/"+alice.String()+"/balance")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), data["balance"])
	assert.Equal(t, "Coins", data["currency"])

	// Fund alice.
	resp, data = app.putJSON(t, "/api/v1/admin/accounts/"+alice.String()+"/balance",
		map[string]any{"amount": 100}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(100), data["balance"])

	// Transfer 30 to bob.
	resp, data = app.postJSON(t, "/api/v1/transfers", map[string]any{
		"from": alice.String(), "to": bob.String(), "amount": 30,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(70), data["from_balance"])
	assert.Equal(t, float64(30), data["to_balance"])

	// Overdraw is rejected and leaves balances unchanged.
	resp, _ = app.postJSON(t, "/api/v1/transfers", map[string]any{
		"from": alice.String(), "to": bob.String(), "amount": 1000,
	}, "")
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	_, data = app.get(t, "/api/v1/accounts/"+alice.String()+"/balance")
	assert.Equal(t, float64(70), data["balance"])
}

func TestIntegration_DailyClaimOncePerDay(t *testing.T) {
	app := newTestApp(t)

	account := uuid.New()

	resp, data := app.postJSON(t, "/api/v1/accounts/"+account.String()+"/claim-daily", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	amount := data["amount"].(float64)
	assert.GreaterOrEqual(t, amount, float64(100))
	assert.LessOrEqual(t, amount, float64(500))
	assert.Equal(t, amount, data["balance"])

	// Second claim the same day is rejected.
	resp, _ = app.postJSON(t, "/api/v1/accounts/"+account.String()+"/claim-daily", nil, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Balance unchanged by the rejected claim.
	_, data = app.get(t, "/api/v1/accounts/"+account.String()+"/balance")
	assert.Equal(t, amount, data["balance"])
}

func TestIntegration_LeaderboardOrderAndRank(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	for id, amount := range map[uuid.UUID]float64{a: 100, b: 50, c: 200} {
		resp, _ := app.putJSON(t, "/api/v1/admin/accounts/"+id.String()+"/balance",
			map[string]any{"amount": amount}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, data := app.get(t, "/api/v1/leaderboard?page=1&size=10")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := data["entries"].([]interface{})
	require.Len(t, entries, 3)

	first := entries[0].(map[string]interface{})
	assert.Equal(t, c.String(), first["account_id"])
	assert.Equal(t, float64(200), first["balance"])
	assert.Equal(t, float64(1), first["rank"])

	second := entries[1].(map[string]interface{})
	assert.Equal(t, a.String(), second["account_id"])

	third := entries[2].(map[string]interface{})
	assert.Equal(t, b.String(), third["account_id"])

	// Rank lookup for a specific account.
	resp, data = app.get(t, "/api/v1/leaderboard/rank/" + b.String())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), data["rank"])

	// Unranked account yields 404.
	resp, _ = app.get(t, "/api/v1/leaderboard/rank/" + uuid.NewString())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIntegration_CurrencyRenameConservesBalances(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	account := uuid.New()
	resp, _ := app.putJSON(t, "/api/v1/admin/accounts/"+account.String()+"/balance",
		map[string]any{"amount": 125.5}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data := app.putJSON(t, "/api/v1/admin/settings/currency",
		map[string]any{"name": "Gems"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Gems", data["currency"])

	// Balance value is untouched; only the unit name changed.
	_, data = app.get(t, "/api/v1/accounts/"+account.String()+"/balance")
	assert.Equal(t, 125.5, data["balance"])
	assert.Equal(t, "Gems", data["currency"])
}

func TestIntegration_SettingsValidation(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t)

	resp, _ := app.putJSON(t, "/api/v1/admin/settings/reward-range",
		map[string]any{"min": 500, "max": 100}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = app.putJSON(t, "/api/v1/admin/settings/locale",
		map[string]any{"tag": "no_such_locale!!"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, data := app.putJSON(t, "/api/v1/admin/settings/reward-range",
		map[string]any{"min": 10, "max": 20}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10), data["reward_min"])
	assert.Equal(t, float64(20), data["reward_max"])
}

func TestIntegration_FlushAndReloadSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	first := newTestAppInDir(t, dir)
	token := first.login(t)

	account := uuid.New()
	resp, _ := first.putJSON(t, "/api/v1/admin/accounts/"+account.String()+"/balance",
		map[string]any{"amount": 420}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = first.postJSON(t, "/api/v1/admin/flush", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first.server.Close()

	// A fresh stack over the same directory sees the persisted state.
	second := newTestAppInDir(t, dir)
	_, data := second.get(t, "/api/v1/accounts/"+account.String()+"/balance")
	assert.Equal(t, float64(420), data["balance"])
}
