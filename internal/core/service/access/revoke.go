package access

import (
	"context"
	"fmt"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// Revoke withdraws grantee's access to the file stored under hash. The
// uploader cannot revoke themselves, so a file never loses its owner.
// Revoking a principal that holds no grant is allowed and still emits its
// event.
func (a *accessService) Revoke(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error {

	at := a.clock.Now().UTC()

	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		record, err := uow.RecordRepo().Find(ctx, hash)
		if err != nil {
			return err
		}

		if record.Uploader != caller {
			return domain.ErrUnauthorized
		}

		if grantee == caller {
			return domain.ErrSelfRevocation
		}

		if err := uow.GrantRepo().Set(ctx, hash, grantee, false); err != nil {
			return err
		}

		if _, err := uow.EventRepo().Append(ctx, domain.NewAccessRevokedEvent(hash, grantee, at)); err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		return fmt.Errorf("could not revoke access: %w", txErr)
	}

	return nil
}
