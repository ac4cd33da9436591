package service

import (
	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
)

// ResolveOwner decides which user a scoped write belongs to when the
// identifier may arrive from two sources: the authenticated caller context
// and the request payload. uuid.Nil means absent.
//
// Exactly one policy applies: a single source wins, agreeing sources win,
// and disagreeing sources are rejected outright. Ambiguity is never resolved
// silently in favor of either side.
func ResolveOwner(callerID, bodyID uuid.UUID) (uuid.UUID, error) {
	switch {
	case callerID == uuid.Nil && bodyID == uuid.Nil:
		return uuid.Nil, domain.ErrOwnerRequired
	case callerID == uuid.Nil:
		return bodyID, nil
	case bodyID == uuid.Nil:
		return callerID, nil
	case callerID != bodyID:
		return uuid.Nil, domain.ErrOwnerConflict
	default:
		return callerID, nil
	}
}
