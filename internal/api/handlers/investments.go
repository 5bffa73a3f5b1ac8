package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/response"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/ledger"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/validation"
)

// InvestmentHandler handles investment-related HTTP requests
type InvestmentHandler struct {
	profileService *service.ProfileService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(profileService *service.ProfileService) *InvestmentHandler {
	return &InvestmentHandler{
		profileService: profileService,
	}
}

// AddInvestment appends an investment to the portfolio in the URL.
func (h *InvestmentHandler) AddInvestment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInvestmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateCreateInvestment(req); err != nil {
		respondServiceError(w, "Investment validation failed", err)
		return
	}

	// New investments default to active unless the caller says otherwise.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	investment, err := h.profileService.AddInvestment(chi.URLParam(r, "uuid"), ledger.InvestmentInput{
		Name:                 req.Name,
		Category:             req.Category,
		Type:                 model.InvestmentType(req.Type),
		InvestedAmount:       req.InvestedAmount,
		CurrentValue:         req.CurrentValue,
		AcquisitionDate:      parseDate(req.AcquisitionDate),
		MaturityDate:         parseDatePtr(req.MaturityDate),
		RealizedReturn:       req.RealizedReturn,
		AnnualizedReturnRate: req.AnnualizedReturnRate,
		Broker:               req.Broker,
		Notes:                req.Notes,
		Tags:                 req.Tags,
		Active:               active,
	})
	if err != nil {
		respondServiceError(w, "Failed to add investment", err)
		return
	}
	respondJSON(w, http.StatusCreated, investment)
}

// UpdateInvestment merges partial fields into an investment.
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "investmentUuid")
	if err := validation.ValidateUUID(investmentID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	var req request.UpdateInvestmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateUpdateInvestment(req); err != nil {
		respondServiceError(w, "Investment validation failed", err)
		return
	}

	in := ledger.UpdateInvestmentInput{
		Name:                 req.Name,
		Category:             req.Category,
		InvestedAmount:       req.InvestedAmount,
		CurrentValue:         req.CurrentValue,
		AcquisitionDate:      parseDatePtr(req.AcquisitionDate),
		MaturityDate:         parseDatePtr(req.MaturityDate),
		RealizedReturn:       req.RealizedReturn,
		AnnualizedReturnRate: req.AnnualizedReturnRate,
		Broker:               req.Broker,
		Notes:                req.Notes,
		Tags:                 req.Tags,
		Active:               req.Active,
	}
	if req.Type != nil {
		t := model.InvestmentType(*req.Type)
		in.Type = &t
	}

	investment, err := h.profileService.UpdateInvestment(chi.URLParam(r, "uuid"), investmentID, in)
	if err != nil {
		respondServiceError(w, "Failed to update investment", err)
		return
	}
	respondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment removes an investment and the transactions
// referencing it.
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "investmentUuid")
	if err := validation.ValidateUUID(investmentID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid UUID format", err.Error())
		return
	}

	if err := h.profileService.DeleteInvestment(chi.URLParam(r, "uuid"), investmentID); err != nil {
		respondServiceError(w, "Failed to delete investment", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
