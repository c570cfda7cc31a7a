package access

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1GrantAccessRequest names the principal to put on the allow list
type V1GrantAccessRequest struct {
	Grantee string `json:"grantee"`
}

// GrantAccessV1 is the function that handles access grants
func (h *HandlerV1) GrantAccessV1(w http.ResponseWriter, r *http.Request) {

	caller, callerErr := domain.ParsePrincipal(r.Header.Get("X-Vault-Principal"))
	if callerErr != nil || caller.IsZero() {
		http.Error(w, "missing or invalid principal header", http.StatusUnauthorized)
		return
	}

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	var req V1GrantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding grant request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grantee, granteeErr := domain.ParsePrincipal(req.Grantee)
	if granteeErr != nil {
		http.Error(w, "invalid grantee", http.StatusBadRequest)
		return
	}

	grantErr := h.accessService.Grant(r.Context(), caller, hash, grantee)
	switch {
	case errors.Is(grantErr, domain.ErrRecordNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
		return
	case errors.Is(grantErr, domain.ErrUnauthorized):
		http.Error(w, "only the uploader can grant access", http.StatusForbidden)
		return
	case errors.Is(grantErr, domain.ErrInvalidGrantee):
		http.Error(w, "invalid grantee", http.StatusBadRequest)
		return
	case grantErr != nil:
		h.logger.Error("error granting access", "error", grantErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
