package access

import (
	"context"
	"errors"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// CanAccess reports whether principal may read the file stored under hash:
// true for the uploader and for any principal holding an active grant. A
// missing record is not an error, it simply grants nobody.
func (a *accessService) CanAccess(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error) {

	record, err := a.uow.RecordRepo().Find(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if record.Uploader == principal {
		return true, nil
	}

	allowed, err := a.uow.GrantRepo().Allowed(ctx, hash, principal)
	if err != nil {
		return false, err
	}

	return allowed, nil
}
