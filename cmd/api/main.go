package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/luxemods/economy-backend/api/routes"
	"github.com/luxemods/economy-backend/internal/config"
	"github.com/luxemods/economy-backend/internal/handlers"
	"github.com/luxemods/economy-backend/internal/repositories"
	memrepo "github.com/luxemods/economy-backend/internal/repositories/memory"
	mongorepo "github.com/luxemods/economy-backend/internal/repositories/mongodb"
	"github.com/luxemods/economy-backend/internal/services"
	mongodb "github.com/luxemods/economy-backend/pkg/mongodb"
	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"
)

// stores bundles the repository set for whichever driver is configured
type stores struct {
	wallet      repositories.WalletRepository
	tickets     repositories.TicketRepository
	claims      repositories.DailyClaimRepository
	prizes      repositories.PrizeRepository
	settings    repositories.WheelSettingsRepository
	history     repositories.SpinHistoryRepository
	eligibility repositories.EligibilityRepository
	admins      repositories.AdminUserRepository
}

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var st stores
	switch cfg.Storage.Driver {
	case "memory":
		slog.Warn("Using in-memory storage, all state is lost on restart")
		st = memoryStores()
	default:
		mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
			log.Fatalf("Failed to ensure indexes: %v", err)
		}
		st = stores{
			wallet:      mongorepo.NewWalletRepository(db),
			tickets:     mongorepo.NewTicketRepository(db),
			claims:      mongorepo.NewDailyClaimRepository(db),
			prizes:      mongorepo.NewPrizeRepository(db),
			settings:    mongorepo.NewWheelSettingsRepository(db),
			history:     mongorepo.NewSpinHistoryRepository(db),
			eligibility: mongorepo.NewEligibilityRepository(db),
			admins:      mongorepo.NewAdminUserRepository(db),
		}
	}

	// Initialize services
	walletService := services.NewWalletService(st.wallet)
	spinService := services.NewSpinService(st.prizes, st.settings, st.tickets, st.wallet, st.history, st.eligibility)
	dailyService := services.NewDailyRewardService(st.claims, st.tickets, st.wallet, cfg.Wheel.DailyCoinReward)
	eligibilityService := services.NewEligibilityService(st.eligibility, st.tickets, st.prizes)
	prizeService := services.NewPrizeService(st.prizes, st.settings)
	authService := services.NewAuthService(st.admins, cfg)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		WalletHandler: handlers.NewWalletHandler(walletService),
		SpinHandler:   handlers.NewSpinHandler(spinService),
		DailyHandler:  handlers.NewDailyHandler(dailyService),
		AdminHandler:  handlers.NewAdminHandler(prizeService, eligibilityService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	// Periodic sweep of expired eligibility grants
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Wheel.SweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := eligibilityService.SweepExpiredGrants(ctx); err != nil {
			slog.Error("Expired-grant sweep failed", "error", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule grant sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func memoryStores() stores {
	return stores{
		wallet:      memrepo.NewWalletRepository(),
		tickets:     memrepo.NewTicketRepository(),
		claims:      memrepo.NewDailyClaimRepository(),
		prizes:      memrepo.NewPrizeRepository(),
		settings:    memrepo.NewWheelSettingsRepository(),
		history:     memrepo.NewSpinHistoryRepository(),
		eligibility: memrepo.NewEligibilityRepository(),
		admins:      memrepo.NewAdminUserRepository(),
	}
}
