package record

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// GetRecordV1 returns the provenance metadata stored under a content hash.
// Provenance is public; only the content itself is access gated.
func (h *HandlerV1) GetRecordV1(w http.ResponseWriter, r *http.Request) {

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	record, found, getErr := h.registryService.Get(r.Context(), hash)
	switch {
	case getErr != nil:
		h.logger.Error("error getting record", "error", getErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	case !found:
		http.Error(w, "record not found", http.StatusNotFound)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toRecordResponse(record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

// V1RecordExistsResponse is the response to an existence probe
type V1RecordExistsResponse struct {
	Exists bool `json:"exists"`
}

// RecordExistsV1 is the function that handles existence probes
func (h *HandlerV1) RecordExistsV1(w http.ResponseWriter, r *http.Request) {

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	exists, existsErr := h.registryService.Exists(r.Context(), hash)
	if existsErr != nil {
		h.logger.Error("error checking record existence", "error", existsErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1RecordExistsResponse{Exists: exists}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
