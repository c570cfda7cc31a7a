package geofence

import (
	"context"
	"fmt"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/geomath"
)

// Verify reports whether the given position satisfies the location lock of
// the file stored under hash. A record without a lock accepts any position.
// The fence boundary is inclusive: a position exactly at the radius passes.
func (g *geofenceService) Verify(ctx context.Context, hash domain.FileHash, latMicro, lonMicro int32) (bool, error) {

	record, err := g.uow.RecordRepo().Find(ctx, hash)
	if err != nil {
		return false, fmt.Errorf("could not verify location: %w", err)
	}

	if !record.HasLocationLock {
		return true, nil
	}

	distance := geomath.PlanarDistanceMeters(
		int64(record.LockLatMicro), int64(record.LockLonMicro),
		int64(latMicro), int64(lonMicro),
	)

	return distance <= int64(record.LockRadiusMeters), nil
}
