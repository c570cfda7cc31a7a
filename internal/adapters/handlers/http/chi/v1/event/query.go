package event

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// V1EventResponse is one provenance log entry on the wire
type V1EventResponse struct {
	Seq       uint64    `json:"seq"`
	Kind      string    `json:"kind"`
	FileHash  string    `json:"file_hash"`
	EmittedAt time.Time `json:"emitted_at"`

	Uploader         string `json:"uploader,omitempty"`
	StoragePointer   string `json:"storage_pointer,omitempty"`
	Signature        []byte `json:"signature,omitempty"`
	HasLocationLock  bool   `json:"has_location_lock,omitempty"`
	LockLatMicro     int32  `json:"lock_lat_micro,omitempty"`
	LockLonMicro     int32  `json:"lock_lon_micro,omitempty"`
	LockRadiusMeters uint32 `json:"lock_radius_m,omitempty"`

	Grantee string `json:"grantee,omitempty"`
}

// V1QueryEventsResponse is the response to an event log query
type V1QueryEventsResponse struct {
	Events []V1EventResponse `json:"events"`
}

func toEventResponse(e domain.Event) V1EventResponse {
	resp := V1EventResponse{
		Seq:              e.Seq,
		Kind:             string(e.Kind),
		FileHash:         e.FileHash.String(),
		EmittedAt:        e.EmittedAt,
		StoragePointer:   e.StoragePointer,
		Signature:        e.Signature,
		HasLocationLock:  e.HasLocationLock,
		LockLatMicro:     e.LockLatMicro,
		LockLonMicro:     e.LockLonMicro,
		LockRadiusMeters: e.LockRadiusMeters,
	}
	if !e.Uploader.IsZero() {
		resp.Uploader = e.Uploader.String()
	}
	if !e.Grantee.IsZero() {
		resp.Grantee = e.Grantee.String()
	}
	return resp
}

// QueryEventsV1 is the function that handles event log queries. The window
// bounds are RFC3339 timestamps; both are optional and inclusive.
func (h *HandlerV1) QueryEventsV1(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()

	var from, to *time.Time
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid from timestamp", http.StatusBadRequest)
			return
		}
		from = &parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid to timestamp", http.StatusBadRequest)
			return
		}
		to = &parsed
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, queryErr := h.eventLogService.Query(r.Context(), from, to, limit)
	if queryErr != nil {
		h.logger.Error("error querying events", "error", queryErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := V1QueryEventsResponse{Events: make([]V1EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
