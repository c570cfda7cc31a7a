package registry

import (
	"context"
	"errors"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// Get returns the record stored under hash. Absence is not an error: the
// boolean reports whether a record exists.
func (r *registryService) Get(ctx context.Context, hash domain.FileHash) (domain.FileRecord, bool, error) {

	record, err := r.uow.RecordRepo().Find(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.FileRecord{}, false, nil
		}
		return domain.FileRecord{}, false, err
	}

	return record.Clone(), true, nil
}
