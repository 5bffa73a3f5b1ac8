package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/handlers"
	custommiddleware "github.com/jdewildt/Finance-Ledger-Backend/internal/api/middleware"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/config"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, profileService *service.ProfileService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(profileService)
			investmentHandler := handlers.NewInvestmentHandler(profileService)
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", portfolioHandler.Portfolio)
				r.Put("/", portfolioHandler.UpdatePortfolio)
				r.Delete("/", portfolioHandler.DeletePortfolio)

				r.Post("/investment", investmentHandler.AddInvestment)
				r.Put("/investment/{investmentUuid}", investmentHandler.UpdateInvestment)
				r.Delete("/investment/{investmentUuid}", investmentHandler.DeleteInvestment)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(profileService)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
		})

		r.Route("/recurring", func(r chi.Router) {
			recurringHandler := handlers.NewRecurringHandler(profileService)
			r.Get("/", recurringHandler.Obligations)
			r.Post("/", recurringHandler.CreateObligation)
			r.Post("/sweep", recurringHandler.Sweep)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", recurringHandler.Obligation)
				r.Put("/", recurringHandler.UpdateObligation)
				r.Delete("/", recurringHandler.DeleteObligation)

				r.Put("/installment/{sequence}", recurringHandler.EditInstallments)
				r.Post("/installment/{sequence}/settle", recurringHandler.SettleInstallment)
			})
		})

		summaryHandler := handlers.NewSummaryHandler(profileService)
		r.Get("/summary", summaryHandler.Summary)
	})

	return r
}
