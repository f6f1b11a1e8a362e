package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/repository/sqlite"
)

func TestRegister(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "  test ", "123qwe")
	require.NoError(t, err)
	assert.Equal(t, "test", user.Username)
	assert.Empty(t, user.PasswordHash)

	stored, err := sqlite.NewUserRepository(f.db).GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("123qwe")))

	_, err = f.users.Register(ctx, "test", "123qwe")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	_, err := f.users.Register(ctx, "", "123qwe")
	assert.Error(t, err)
	_, err = f.users.Register(ctx, "test", "")
	assert.Error(t, err)
	_, err = f.users.Register(ctx, "test", "123")
	assert.Error(t, err)
}
