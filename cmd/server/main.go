package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/clock"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/config"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/database"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/repository"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and bring the schema up to date
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create the persistence gateway
	snapshotRepo, err := repository.NewSQLiteSnapshotRepository(db, cfg.Profile.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	profileService, err := service.NewProfileService(snapshotRepo, clock.System{}, cfg.Profile.ID, cfg.Profile.LookaheadMonths)
	if err != nil {
		log.Fatalf("Failed to load profile %q: %v", cfg.Profile.ID, err)
	}

	log.Printf("Loaded profile: %s", cfg.Profile.ID)

	// Schedule the daily overdue sweep. The operation is idempotent, so
	// a missed or doubled run is harmless; it can also be triggered
	// manually through the API.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Sweep.CronSpec, func() {
		changed, err := profileService.AdvanceOverdue()
		if err != nil {
			log.Printf("Overdue sweep failed: %v", err)
			return
		}
		log.Printf("Overdue sweep completed, %d installments changed", changed)
	}); err != nil {
		log.Fatalf("Failed to schedule overdue sweep %q: %v", cfg.Sweep.CronSpec, err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Create router
	router := api.NewRouter(systemService, profileService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
