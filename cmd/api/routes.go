package main

import (
	"net/http"

	"gastos/internal/shared/config"
	"gastos/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handleHealth)

	mux.HandleFunc("/api/wallets", deps.WalletHandler.HandleWallets)
	mux.HandleFunc("/api/categories", deps.CategoryHandler.HandleCategories)
	mux.HandleFunc("/api/transactions", deps.TransactionHandler.HandleTransactions)
	mux.HandleFunc("/api/stats", deps.StatsHandler.HandleStats)
	mux.HandleFunc("/api/ai/interpret", deps.InterpretHandler.HandleInterpret)

	handler := middleware.Logging(middleware.CORS(mux))
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}

	return handler
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
