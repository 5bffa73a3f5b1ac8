package handlers

import (
	"net/http"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
)

// SummaryHandler handles the read-only aggregation query
type SummaryHandler struct {
	profileService *service.ProfileService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(profileService *service.ProfileService) *SummaryHandler {
	return &SummaryHandler{
		profileService: profileService,
	}
}

// Summary returns ledger-wide aggregation metrics, recomputed from the
// current snapshot on every call.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.Summary())
}
