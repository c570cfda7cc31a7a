package access

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1RevokeAccessRequest names the principal to take off the allow list
type V1RevokeAccessRequest struct {
	Grantee string `json:"grantee"`
}

// RevokeAccessV1 is the function that handles access revocations
func (h *HandlerV1) RevokeAccessV1(w http.ResponseWriter, r *http.Request) {

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

	var req V1RevokeAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding revoke request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grantee, granteeErr := domain.ParsePrincipal(req.Grantee)
	if granteeErr != nil {
		http.Error(w, "invalid grantee", http.StatusBadRequest)
		return
	}

	revokeErr := h.accessService.Revoke(r.Context(), caller, hash, grantee)
	switch {
	case errors.Is(revokeErr, domain.ErrRecordNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
		return
	case errors.Is(revokeErr, domain.ErrUnauthorized):
		http.Error(w, "only the uploader can revoke access", http.StatusForbidden)
		return
	case errors.Is(revokeErr, domain.ErrSelfRevocation):
		http.Error(w, "the uploader cannot revoke their own access", http.StatusConflict)
		return
	case revokeErr != nil:
		h.logger.Error("error revoking access", "error", revokeErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
