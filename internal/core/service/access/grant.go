package access

import (
	"context"
	"fmt"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// Grant allows grantee to access the file stored under hash. Only the
// uploader may grant, and the null identity can never be a grantee. Granting
// an already-granted principal is allowed and still emits its event. The
// checks run in a fixed order: record exists, caller is the uploader,
// grantee is valid.
func (a *accessService) Grant(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error {

	at := a.clock.Now().UTC()

	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		record, err := uow.RecordRepo().Find(ctx, hash)
		if err != nil {
			return err
		}

		if record.Uploader != caller {
			return domain.ErrUnauthorized
		}

		if grantee.IsZero() {
			return domain.ErrInvalidGrantee
		}

		if err := uow.GrantRepo().Set(ctx, hash, grantee, true); err != nil {
			return err
		}

		if _, err := uow.EventRepo().Append(ctx, domain.NewAccessGrantedEvent(hash, grantee, at)); err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		return fmt.Errorf("could not grant access: %w", txErr)
	}

	return nil
}
