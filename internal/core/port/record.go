package port

import (
	"context"
	"io"
	"time"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// RecordRepository is an interface to define file record repository interactions
type RecordRepository interface {
	Create(ctx context.Context, record domain.FileRecord) error
	Find(ctx context.Context, hash domain.FileHash) (*domain.FileRecord, error)
	Exists(ctx context.Context, hash domain.FileHash) (bool, error)
}

// ContentStore is an interface to define content-addressed object storage interactions
type ContentStore interface {
	Save(ctx context.Context, r io.Reader, size int64, contentType string) (domain.FileHash, string, error)
	PresignedDownload(ctx context.Context, pointer string) (string, *time.Time, error)
}

// RegistryService is an interface to define the write-once file registry
type RegistryService interface {
	Put(ctx context.Context, uploader domain.Principal, hash domain.FileHash, pointer string, signature []byte, hasLock bool, latMicro, lonMicro int32, radiusMeters uint32) (domain.FileRecord, error)
	Get(ctx context.Context, hash domain.FileHash) (domain.FileRecord, bool, error)
	Exists(ctx context.Context, hash domain.FileHash) (bool, error)
}
