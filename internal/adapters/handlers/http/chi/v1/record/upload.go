package record

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// UploadRecordV1 stores the uploaded content and registers its provenance
// record in one request. The file travels as the multipart part "file";
// "signature" is an optional hex field, "lat_micro"/"lon_micro"/"radius_m"
// together describe an optional location lock.
func (h *HandlerV1) UploadRecordV1(w http.ResponseWriter, r *http.Request) {

	caller, callerErr := domain.ParsePrincipal(r.Header.Get("X-Vault-Principal"))
	if callerErr != nil || caller.IsZero() {
		http.Error(w, "missing or invalid principal header", http.StatusUnauthorized)
		return
	}

	content, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer content.Close()

	var signature []byte
	if sigHex := r.FormValue("signature"); sigHex != "" {
		signature, err = hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
		if err != nil {
			http.Error(w, "invalid signature encoding", http.StatusBadRequest)
			return
		}
	}

	hasLock, latMicro, lonMicro, radiusMeters, lockErr := parseLockForm(r)
	if lockErr != nil {
		http.Error(w, lockErr.Error(), http.StatusBadRequest)
		return
	}

	hash, pointer, saveErr := h.contentStore.Save(r.Context(), content, header.Size, header.Header.Get("Content-Type"))
	if saveErr != nil {
		h.logger.Error("error saving content", "error", saveErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	record, putErr := h.registryService.Put(r.Context(), caller, hash, pointer, signature, hasLock, latMicro, lonMicro, radiusMeters)
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

func parseLockForm(r *http.Request) (bool, int32, int32, uint32, error) {
	latRaw := r.FormValue("lat_micro")
	lonRaw := r.FormValue("lon_micro")
	radiusRaw := r.FormValue("radius_m")

	if latRaw == "" && lonRaw == "" && radiusRaw == "" {
		return false, 0, 0, 0, nil
	}
	if latRaw == "" || lonRaw == "" || radiusRaw == "" {
		return false, 0, 0, 0, errors.New("a location lock needs lat_micro, lon_micro and radius_m")
	}

	lat, err := strconv.ParseInt(latRaw, 10, 32)
	if err != nil {
		return false, 0, 0, 0, fmt.Errorf("invalid lat_micro: %w", err)
	}
	lon, err := strconv.ParseInt(lonRaw, 10, 32)
	if err != nil {
		return false, 0, 0, 0, fmt.Errorf("invalid lon_micro: %w", err)
	}
	radius, err := strconv.ParseUint(radiusRaw, 10, 32)
	if err != nil {
		return false, 0, 0, 0, fmt.Errorf("invalid radius_m: %w", err)
	}

	return true, int32(lat), int32(lon), uint32(radius), nil
}
