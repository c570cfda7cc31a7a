package registry

import (
	"context"
	"fmt"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// Put records content under its hash, exactly once. The record, the
// uploader's own grant and the uploaded event commit as a single transition,
// so no reader ever sees a record without its grant or its event.
func (r *registryService) Put(ctx context.Context, uploader domain.Principal, hash domain.FileHash, pointer string, signature []byte, hasLock bool, latMicro, lonMicro int32, radiusMeters uint32) (domain.FileRecord, error) {

	if pointer == "" {
		return domain.FileRecord{}, domain.ErrInvalidPointer
	}

	record := domain.FileRecord{
		FileHash:         hash,
		Uploader:         uploader,
		StoragePointer:   pointer,
		Signature:        signature,
		Timestamp:        r.clock.Now().UTC(),
		HasLocationLock:  hasLock,
		LockLatMicro:     latMicro,
		LockLonMicro:     lonMicro,
		LockRadiusMeters: radiusMeters,
	}

	txErr := r.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		if err := uow.RecordRepo().Create(ctx, record); err != nil {
			return err
		}

		if err := uow.GrantRepo().Set(ctx, hash, uploader, true); err != nil {
			return err
		}

		if _, err := uow.EventRepo().Append(ctx, domain.NewUploadedEvent(record)); err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		return domain.FileRecord{}, fmt.Errorf("could not register file record: %w", txErr)
	}

	return record.Clone(), nil
}
