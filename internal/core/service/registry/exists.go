package registry

import (
	"context"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

func (r *registryService) Exists(ctx context.Context, hash domain.FileHash) (bool, error) {

	exists, err := r.uow.RecordRepo().Exists(ctx, hash)
	if err != nil {
		return false, err
	}

	return exists, nil
}
