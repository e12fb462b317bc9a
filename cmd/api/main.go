package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/swiff-app/swiff/docs"
	"github.com/swiff-app/swiff/internal/config"
	"github.com/swiff-app/swiff/internal/database"
	"github.com/swiff-app/swiff/internal/ledger"
	"github.com/swiff-app/swiff/internal/person"
	"github.com/swiff-app/swiff/internal/splitbill"
	"github.com/swiff-app/swiff/internal/splitbill/split"
	"github.com/swiff-app/swiff/internal/subscription"
	"github.com/swiff-app/swiff/internal/transaction"
	"github.com/swiff-app/swiff/pkg/logging"
	mw "github.com/swiff-app/swiff/pkg/middleware"
)

// @title           Swiff API
// @version         1.0
// @description     Personal finance tracking: split bills, balances, transactions and subscriptions.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database successfully")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := split.NewSplitStrategyFactory()

	// Person feature
	personRepo := person.NewRepository(db)
	personService := person.NewService(personRepo)
	personHandler := person.NewHandler(personService)

	// Ledger feature (balances and settlements)
	ledgerRepo := ledger.NewRepository(db)
	ledgerService := ledger.NewService(ledgerRepo)
	ledgerHandler := ledger.NewHandler(ledgerService)

	// Transaction feature
	transactionRepo := transaction.NewRepository(db)
	transactionService := transaction.NewService(transactionRepo)
	transactionHandler := transaction.NewHandler(transactionService)

	// Split bill feature (with split factory and ledger injected)
	splitBillRepo := splitbill.NewRepository(db)
	splitBillService := splitbill.NewService(splitBillRepo, splitFactory, ledgerService, transactionRepo)
	splitBillHandler := splitbill.NewHandler(splitBillService)

	// Subscription feature
	subscriptionRepo := subscription.NewRepository(db)
	subscriptionService := subscription.NewService(subscriptionRepo, cfg.UpcomingRenewalDays)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/people", personHandler.Routes())
		r.Mount("/balances", ledgerHandler.BalanceRoutes())
		r.Mount("/settlements", ledgerHandler.SettlementRoutes())
		r.Mount("/splits", splitBillHandler.Routes())
		r.Mount("/transactions", transactionHandler.Routes())
		r.Mount("/subscriptions", subscriptionHandler.Routes())

		r.Post("/people/{id}/settle", ledgerHandler.Settle)
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
