package record

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// HandlerV1 is the handler for v1 record routes
type HandlerV1 struct {
	registryService port.RegistryService
	accessService   port.AccessService
	geofenceService port.GeofenceService
	contentStore    port.ContentStore
	logger          *slog.Logger
}

// NewRecordHandlerV1 creates HandlerV1
func NewRecordHandlerV1(
	registryService port.RegistryService,
	accessService port.AccessService,
	geofenceService port.GeofenceService,
	contentStore port.ContentStore,
	logger *slog.Logger,
) *HandlerV1 {
	return &HandlerV1{
		registryService: registryService,
		accessService:   accessService,
		geofenceService: geofenceService,
		contentStore:    contentStore,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadRecordV1)
	router.Post("/register", h.RegisterRecordV1)
	router.Get("/{hash}", h.GetRecordV1)
	router.Get("/{hash}/exists", h.RecordExistsV1)
	router.Post("/{hash}/verify", h.VerifyLocationV1)
	router.Get("/{hash}/content", h.GetContentV1)

	return router
}

// V1RecordResponse is the provenance metadata of one registered file
type V1RecordResponse struct {
	FileHash        string    `json:"file_hash"`
	Uploader        string    `json:"uploader"`
	StoragePointer  string    `json:"storage_pointer"`
	Signature       []byte    `json:"signature,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	HasLocationLock bool      `json:"has_location_lock"`
	LockLatMicro    int32     `json:"lock_lat_micro,omitempty"`
	LockLonMicro    int32     `json:"lock_lon_micro,omitempty"`
	LockRadiusM     uint32    `json:"lock_radius_m,omitempty"`
}

func toRecordResponse(record domain.FileRecord) V1RecordResponse {
	return V1RecordResponse{
		FileHash:        record.FileHash.String(),
		Uploader:        record.Uploader.String(),
		StoragePointer:  record.StoragePointer,
		Signature:       record.Signature,
		Timestamp:       record.Timestamp,
		HasLocationLock: record.HasLocationLock,
		LockLatMicro:    record.LockLatMicro,
		LockLonMicro:    record.LockLonMicro,
		LockRadiusM:     record.LockRadiusMeters,
	}
}
