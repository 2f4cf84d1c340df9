package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luxemods/economy-backend/internal/config"
	"github.com/luxemods/economy-backend/internal/handlers"
	"github.com/luxemods/economy-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	WalletHandler *handlers.WalletHandler
	SpinHandler   *handlers.SpinHandler
	DailyHandler  *handlers.DailyHandler
	AdminHandler  *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes. Player identity resolution happens upstream; the
	// account key in the path is already a stable key.
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		wallet := public.Group("/wallet")
		{
			wallet.GET("/:account", deps.WalletHandler.GetBalance)
			wallet.GET("/:account/ledger", deps.WalletHandler.GetLedger)
			wallet.POST("/:account/debit", deps.WalletHandler.Debit)
		}

		public.GET("/tickets/:account", deps.SpinHandler.GetTickets)
		public.POST("/daily/:account/claim", deps.DailyHandler.Claim)

		spin := public.Group("/spin")
		{
			spin.GET("/prizes", deps.SpinHandler.ListPrizes)
			spin.POST("/:account", deps.SpinHandler.Spin)
			spin.GET("/:account/history", deps.SpinHandler.GetHistory)
		}
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	{
		admin.POST("/wallet/:account/credit", deps.WalletHandler.Credit)

		admin.GET("/prizes", deps.AdminHandler.ListPrizes)
		admin.POST("/prizes", deps.AdminHandler.CreatePrize)
		admin.PUT("/prizes/:id", deps.AdminHandler.UpdatePrize)
		admin.DELETE("/prizes/:id", deps.AdminHandler.DeletePrize)

		admin.GET("/settings", deps.AdminHandler.GetSettings)
		admin.PUT("/settings", deps.AdminHandler.UpdateSettings)

		admin.POST("/eligibility/:account", deps.AdminHandler.GrantBonusSpins)
		admin.DELETE("/eligibility/:account", deps.AdminHandler.RevokeEligibility)
		admin.POST("/force-win/:account", deps.AdminHandler.ForceNextWin)
	}

	return router
}
