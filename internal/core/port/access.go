package port

import (
	"context"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// GrantRepository is an interface to define access grant repository interactions
type GrantRepository interface {
	Set(ctx context.Context, hash domain.FileHash, principal domain.Principal, allowed bool) error
	Allowed(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error)
}

// AccessService is an interface to define uploader-controlled access management
type AccessService interface {
	Grant(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error
	Revoke(ctx context.Context, caller domain.Principal, hash domain.FileHash, grantee domain.Principal) error
	CanAccess(ctx context.Context, hash domain.FileHash, principal domain.Principal) (bool, error)
}
