package record

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

var errNeedBothCoordinates = errors.New("lat_micro and lon_micro must be supplied together as integers")

// V1ContentResponse carries a short-lived download URL
type V1ContentResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetContentV1 hands out a presigned download URL for the stored content.
// The caller must be on the record's allow list, and when the request
// carries coordinates they must fall inside the record's location lock.
func (h *HandlerV1) GetContentV1(w http.ResponseWriter, r *http.Request) {

	hash, err := domain.ParseFileHash(chi.URLParam(r, "hash"))
	if err != nil {
		http.Error(w, "invalid file hash", http.StatusBadRequest)
		return
	}

	caller, callerErr := domain.ParsePrincipal(r.Header.Get("X-Vault-Principal"))
	if callerErr != nil || caller.IsZero() {
		http.Error(w, "missing or invalid principal header", http.StatusUnauthorized)
		return
	}

	record, found, getErr := h.registryService.Get(r.Context(), hash)
	if getErr != nil {
		h.logger.Error("error getting record", "error", getErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if !found {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	allowed, accessErr := h.accessService.CanAccess(r.Context(), hash, caller)
	if accessErr != nil {
		h.logger.Error("error checking access", "error", accessErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if !allowed {
		http.Error(w, "access denied", http.StatusForbidden)
		return
	}

	hasPosition, latMicro, lonMicro, posErr := parsePositionQuery(r)
	if posErr != nil {
		http.Error(w, posErr.Error(), http.StatusBadRequest)
		return
	}
	if hasPosition {
		valid, verifyErr := h.geofenceService.Verify(r.Context(), hash, latMicro, lonMicro)
		if verifyErr != nil {
			h.logger.Error("error verifying location", "error", verifyErr)
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		if !valid {
			http.Error(w, "position outside the location lock", http.StatusForbidden)
			return
		}
	}

	url, expiresAt, signErr := h.contentStore.PresignedDownload(r.Context(), record.StoragePointer)
	switch {
	case signErr != nil:
		h.logger.Error("error generating download url", "error", signErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	case url == "" || expiresAt == nil:
		h.logger.Error("response has nil values", "url", url)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ContentResponse{
			URL:       url,
			ExpiresAt: *expiresAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

func parsePositionQuery(r *http.Request) (bool, int32, int32, error) {
	latRaw := r.URL.Query().Get("lat_micro")
	lonRaw := r.URL.Query().Get("lon_micro")

	if latRaw == "" && lonRaw == "" {
		return false, 0, 0, nil
	}
	if latRaw == "" || lonRaw == "" {
		return false, 0, 0, errNeedBothCoordinates
	}

	lat, err := strconv.ParseInt(latRaw, 10, 32)
	if err != nil {
		return false, 0, 0, errNeedBothCoordinates
	}
	lon, err := strconv.ParseInt(lonRaw, 10, 32)
	if err != nil {
		return false, 0, 0, errNeedBothCoordinates
	}

	return true, int32(lat), int32(lon), nil
}
