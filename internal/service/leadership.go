package service

import (
	"sort"

	"teamup-backend/internal/database/models"
	apperrors "teamup-backend/internal/errors"

	"github.com/google/uuid"
)

// NextOwner picks the successor of a departing owner: the remaining member with the
// earliest join time, ties broken by insertion order. It fails with ErrNoSuccessor
// when nobody else remains.
func NextOwner(memberships []models.Membership, departing uuid.UUID) (uuid.UUID, error) {
	remaining := make([]models.Membership, 0, len(memberships))
	for _, m := range memberships {
		if m.UserID != departing {
			remaining = append(remaining, m)
		}
	}
	if len(remaining) == 0 {
		return uuid.Nil, apperrors.ErrNoSuccessor
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		if !remaining[i].JoinTime.Equal(remaining[j].JoinTime) {
			return remaining[i].JoinTime.Before(remaining[j].JoinTime)
		}
		return remaining[i].ID < remaining[j].ID
	})
	return remaining[0].UserID, nil
}
