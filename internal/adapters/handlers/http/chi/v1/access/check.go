package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1CheckAccessResponse is the response to an access probe
type V1CheckAccessResponse struct {
	Allowed bool `json:"allowed"`
}

// CheckAccessV1 is the function that handles access probes
func (h *HandlerV1) CheckAccessV1(w http.ResponseWriter, r *http.Request) {

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	principal, principalErr := domain.ParsePrincipal(r.URL.Query().Get("principal"))
	if principalErr != nil {
		http.Error(w, "invalid principal", http.StatusBadRequest)
		return
	}

	allowed, accessErr := h.accessService.CanAccess(r.Context(), hash, principal)
	if accessErr != nil {
		h.logger.Error("error checking access", "error", accessErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1CheckAccessResponse{Allowed: allowed}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
