package handler

import (
	"game-economy-service/internal/adapter/http/middleware"
	redisStore "game-economy-service/internal/adapter/storage/redis"
	"game-economy-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.Ledger
	RewardSvc      ports.RewardService
	LeaderboardSvc ports.LeaderboardService
	GridPageSize   int // page size for leaderboard view=grid
	SettingsSvc    ports.SettingsService
	AuthSvc        ports.AdminAuthService
	TokenSvc       ports.TokenService
	Flusher        Flusher
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies the active storage backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	economyHandler := NewEconomyHandler(deps.Ledger, deps.RewardSvc, deps.SettingsSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.GET("/:id/balance", rl("economy"), economyHandler.GetBalance)
		accounts.POST("/:id/claim-daily", rl("claims"), economyHandler.ClaimDaily)
	}
	v1.POST("/transfers", rl("transfers"), economyHandler.Transfer)

	leaderboardHandler := NewLeaderboardHandler(deps.LeaderboardSvc, deps.Ledger, deps.GridPageSize)
	leaderboard := v1.Group("/leaderboard")
	{
		leaderboard.GET("", rl("economy"), leaderboardHandler.GetPage)
		leaderboard.GET("/rank/:id", rl("economy"), leaderboardHandler.GetRank)
	}

	// --- JWT-authenticated routes (operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.Ledger, deps.SettingsSvc, deps.Flusher)

	admin := v1.Group("/admin", jwtAuth)
	{
		admin.PUT("/accounts/:id/balance", rl("admin"), adminHandler.SetBalance)
		admin.POST("/accounts/:id/credit", rl("admin"), adminHandler.Credit)
		admin.POST("/accounts/:id/debit", rl("admin"), adminHandler.Debit)
		admin.GET("/settings", rl("admin"), adminHandler.GetSettings)
		admin.PUT("/settings/currency", rl("admin"), adminHandler.SetCurrency)
		admin.PUT("/settings/reward-range", rl("admin"), adminHandler.SetRewardRange)
		admin.PUT("/settings/locale", rl("admin"), adminHandler.SetLocale)
		admin.POST("/flush", rl("admin"), adminHandler.Flush)
	}

	return r
}
