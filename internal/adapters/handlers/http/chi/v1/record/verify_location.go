package record

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1VerifyLocationRequest is a position to check against a record's fence
type V1VerifyLocationRequest struct {
	LatMicro int32 `json:"lat_micro"`
	LonMicro int32 `json:"lon_micro"`
}

// V1VerifyLocationResponse is the response to a location check
type V1VerifyLocationResponse struct {
	Valid bool `json:"valid"`
}

// VerifyLocationV1 is the function that handles geofence checks
func (h *HandlerV1) VerifyLocationV1(w http.ResponseWriter, r *http.Request) {

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	var req V1VerifyLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding verify location request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valid, verifyErr := h.geofenceService.Verify(r.Context(), hash, req.LatMicro, req.LonMicro)
	switch {
	case errors.Is(verifyErr, domain.ErrRecordNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
		return
	case verifyErr != nil:
		h.logger.Error("error verifying location", "error", verifyErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1VerifyLocationResponse{Valid: valid}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
