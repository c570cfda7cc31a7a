package record

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1RegisterRecordRequest registers provenance for content that is already
// pinned elsewhere: the caller supplies the hash and the storage pointer.
type V1RegisterRecordRequest struct {
	FileHash        string `json:"file_hash"`
	StoragePointer  string `json:"storage_pointer"`
	Signature       []byte `json:"signature,omitempty"`
	HasLocationLock bool   `json:"has_location_lock"`
	LockLatMicro    int32  `json:"lock_lat_micro"`
	LockLonMicro    int32  `json:"lock_lon_micro"`
	LockRadiusM     uint32 `json:"lock_radius_m"`
}

// RegisterRecordV1 is the function that handles record registration
func (h *HandlerV1) RegisterRecordV1(w http.ResponseWriter, r *http.Request) {

	caller, callerErr := domain.ParsePrincipal(r.Header.Get("X-Vault-Principal"))
	if callerErr != nil || caller.IsZero() {
		http.Error(w, "missing or invalid principal header", http.StatusUnauthorized)
		return
	}

	var req V1RegisterRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding register record request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := domain.ParseFileHash(req.FileHash)
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	record, putErr := h.registryService.Put(r.Context(), caller, hash, req.StoragePointer, req.Signature,
		req.HasLocationLock, req.LockLatMicro, req.LockLonMicro, req.LockRadiusM)
	switch {
	case errors.Is(putErr, domain.ErrAlreadyExists):
		http.Error(w, "a record already exists for this content", http.StatusConflict)
		return
	case errors.Is(putErr, domain.ErrInvalidPointer):
		http.Error(w, putErr.Error(), http.StatusBadRequest)
		return
	case putErr != nil:
		h.logger.Error("error registering record", "error", putErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toRecordResponse(record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}
