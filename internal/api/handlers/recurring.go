package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/response"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/recurrence"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/validation"
)

// RecurringHandler handles recurring-obligation HTTP requests
type RecurringHandler struct {
	profileService *service.ProfileService
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(profileService *service.ProfileService) *RecurringHandler {
	return &RecurringHandler{
		profileService: profileService,
	}
}

// Obligations lists every recurring obligation with its installments.
func (h *RecurringHandler) Obligations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.ListObligations())
}

// Obligation returns one obligation by its ID.
func (h *RecurringHandler) Obligation(w http.ResponseWriter, r *http.Request) {
	obligation, err := h.profileService.GetObligation(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve obligation", err)
		return
	}
	respondJSON(w, http.StatusOK, obligation)
}

// CreateObligation creates an obligation and generates its schedule.
func (h *RecurringHandler) CreateObligation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateObligationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateCreateObligation(req); err != nil {
		respondServiceError(w, "Obligation validation failed", err)
		return
	}

	obligation, err := h.profileService.CreateObligation(recurrence.ObligationInput{
		Description:      req.Description,
		Amount:           req.Amount,
		Direction:        model.Direction(req.Direction),
		Category:         req.Category,
		InvestmentID:     req.InvestmentID,
		Frequency:        model.Frequency(req.Frequency),
		StartDate:        parseDate(req.StartDate),
		EndDate:          parseDatePtr(req.EndDate),
		InstallmentCount: req.InstallmentCount,
		Notes:            req.Notes,
	})
	if err != nil {
		respondServiceError(w, "Failed to create obligation", err)
		return
	}
	respondJSON(w, http.StatusCreated, obligation)
}

// UpdateObligation merges metadata fields into an obligation.
func (h *RecurringHandler) UpdateObligation(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateObligationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateUpdateObligation(req); err != nil {
		respondServiceError(w, "Obligation validation failed", err)
		return
	}

	obligation, err := h.profileService.UpdateObligation(chi.URLParam(r, "uuid"), recurrence.UpdateObligationInput{
		Description: req.Description,
		Notes:       req.Notes,
		Active:      req.Active,
	})
	if err != nil {
		respondServiceError(w, "Failed to update obligation", err)
		return
	}
	respondJSON(w, http.StatusOK, obligation)
}

// DeleteObligation removes an obligation and its installments.
func (h *RecurringHandler) DeleteObligation(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.DeleteObligation(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete obligation", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// SettleInstallment settles the installment addressed by sequence number.
func (h *RecurringHandler) SettleInstallment(w http.ResponseWriter, r *http.Request) {
	sequence, ok := h.sequenceParam(w, r)
	if !ok {
		return
	}

	var req request.SettleInstallmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateSettleInstallment(req); err != nil {
		respondServiceError(w, "Settlement validation failed", err)
		return
	}

	installment, err := h.profileService.SettleInstallment(chi.URLParam(r, "uuid"), sequence, recurrence.SettleInput{
		SettledDate: parseDatePtr(req.SettledDate),
		Amount:      req.Amount,
		Category:    req.Category,
	})
	if err != nil {
		respondServiceError(w, "Failed to settle installment", err)
		return
	}
	respondJSON(w, http.StatusOK, installment)
}

// EditInstallments applies an individual or all-mode edit starting at
// the addressed sequence number.
func (h *RecurringHandler) EditInstallments(w http.ResponseWriter, r *http.Request) {
	sequence, ok := h.sequenceParam(w, r)
	if !ok {
		return
	}

	var req request.EditInstallmentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateEditInstallments(req); err != nil {
		respondServiceError(w, "Edit validation failed", err)
		return
	}

	obligation, err := h.profileService.EditInstallments(
		chi.URLParam(r, "uuid"),
		sequence,
		recurrence.EditMode(req.Mode),
		recurrence.EditInput{
			Amount:        req.Amount,
			Category:      req.Category,
			ScheduledDate: parseDatePtr(req.ScheduledDate),
		},
	)
	if err != nil {
		respondServiceError(w, "Failed to edit installments", err)
		return
	}
	respondJSON(w, http.StatusOK, obligation)
}

// Sweep triggers the overdue sweep manually. The same operation runs on
// the cron schedule; this endpoint exists so a scheduler outage never
// blocks the state machine.
func (h *RecurringHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	changed, err := h.profileService.AdvanceOverdue()
	if err != nil {
		respondServiceError(w, "Failed to run overdue sweep", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"changed": changed})
}

func (h *RecurringHandler) sequenceParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	sequence, err := strconv.Atoi(chi.URLParam(r, "sequence"))
	if err != nil || sequence < 1 {
		response.RespondError(w, http.StatusBadRequest, "sequence must be a positive integer", "")
		return 0, false
	}
	return sequence, true
}
