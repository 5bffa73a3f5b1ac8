package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	profileService *service.ProfileService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(profileService *service.ProfileService) *PortfolioHandler {
	return &PortfolioHandler{
		profileService: profileService,
	}
}

// Portfolios returns every portfolio with its investments.
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.ListPortfolios())
}

// Portfolio returns one portfolio by its ID.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.profileService.GetPortfolio(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve portfolio", err)
		return
	}
	respondJSON(w, http.StatusOK, portfolio)
}

// CreatePortfolio creates a new portfolio from the request body.
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateCreatePortfolio(req); err != nil {
		respondServiceError(w, "Portfolio validation failed", err)
		return
	}

	portfolio, err := h.profileService.CreatePortfolio(ledger.CreatePortfolioInput{
		Name:        req.Name,
		Description: req.Description,
		Goal:        goalFromRequest(req.Goal),
	})
	if err != nil {
		respondServiceError(w, "Failed to create portfolio", err)
		return
	}
	respondJSON(w, http.StatusCreated, portfolio)
}

// UpdatePortfolio merges partial fields into a portfolio.
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateUpdatePortfolio(req); err != nil {
		respondServiceError(w, "Portfolio validation failed", err)
		return
	}

	portfolio, err := h.profileService.UpdatePortfolio(chi.URLParam(r, "uuid"), ledger.UpdatePortfolioInput{
		Name:        req.Name,
		Description: req.Description,
		Goal:        goalFromRequest(req.Goal),
		ClearGoal:   req.ClearGoal,
	})
	if err != nil {
		respondServiceError(w, "Failed to update portfolio", err)
		return
	}
	respondJSON(w, http.StatusOK, portfolio)
}

// DeletePortfolio removes a portfolio with the full cascade.
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.DeletePortfolio(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete portfolio", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func goalFromRequest(req *request.GoalRequest) *model.Goal {
	if req == nil {
		return nil
	}
	return &model.Goal{
		TargetValue: req.TargetValue,
		Deadline:    parseDate(req.Deadline),
		Description: req.Description,
	}
}
