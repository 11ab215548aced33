package main

import (
	"context"
	"log"

	"gastos/internal/domain/category"
	"gastos/internal/domain/ledger"
	"gastos/internal/domain/stats"
	"gastos/internal/domain/wallet"
	"gastos/internal/infrastructure/gemini"
	"gastos/internal/infrastructure/postgres"
	httphandlers "gastos/internal/interfaces/http"
	"gastos/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	WalletHandler      *httphandlers.WalletHandler
	CategoryHandler    *httphandlers.CategoryHandler
	TransactionHandler *httphandlers.TransactionHandler
	StatsHandler       *httphandlers.StatsHandler
	InterpretHandler   *httphandlers.InterpretHandler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	// Repositories
	walletRepo := postgres.NewWalletRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Domain services
	walletService := wallet.NewService(walletRepo)
	categoryService := category.NewService(categoryRepo)
	ledgerService := ledger.NewService(transactionRepo)
	statsService := stats.NewService(statsRepo)

	// The AI backend is optional; without a key the interpret and review
	// endpoints report themselves unavailable.
	var aiClient *gemini.Client
	if cfg.AI.GeminiAPIKey != "" {
		aiClient, err = gemini.NewClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Println("Gemini client initialized")
	} else {
		log.Println("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	deps := &Dependencies{
		DB:                 db,
		WalletHandler:      httphandlers.NewWalletHandler(walletService),
		CategoryHandler:    httphandlers.NewCategoryHandler(categoryService),
		TransactionHandler: httphandlers.NewTransactionHandler(ledgerService),
	}

	if aiClient != nil {
		deps.StatsHandler = httphandlers.NewStatsHandler(statsService, aiClient)
		deps.InterpretHandler = httphandlers.NewInterpretHandler(aiClient, walletService, categoryService)
	} else {
		deps.StatsHandler = httphandlers.NewStatsHandler(statsService, nil)
		deps.InterpretHandler = httphandlers.NewInterpretHandler(nil, walletService, categoryService)
	}

	return deps, nil
}

// Close releases held resources.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
