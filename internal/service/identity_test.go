package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveOwner(t *testing.T) {
	callerID := uuid.New()
	bodyID := uuid.New()

	t.Run("both absent", func(t *testing.T) {
		_, err := ResolveOwner(uuid.Nil, uuid.Nil)
		assert.ErrorIs(t, err, domain.ErrOwnerRequired)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("caller only", func(t *testing.T) {
		owner, err := ResolveOwner(callerID, uuid.Nil)
		assert.NoError(t, err)
		assert.Equal(t, callerID, owner)
	})

	t.Run("body only", func(t *testing.T) {
		owner, err := ResolveOwner(uuid.Nil, bodyID)
		assert.NoError(t, err)
		assert.Equal(t, bodyID, owner)
	})

	t.Run("both equal", func(t *testing.T) {
		owner, err := ResolveOwner(callerID, callerID)
		assert.NoError(t, err)
		assert.Equal(t, callerID, owner)
	})

	t.Run("conflicting", func(t *testing.T) {
		_, err := ResolveOwner(callerID, bodyID)
		assert.ErrorIs(t, err, domain.ErrOwnerConflict)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
