package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amazing-hunting/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "test")

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "test", byID.Username)

	byName, err := repo.GetByUsername(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetByID(ctx, user.ID+100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.Create(ctx, &domain.User{Username: "test", PasswordHash: "y"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
