package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/users/domain"
)

func TestRepository_CreateAssignsIDsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	alice, err := repo.Create(ctx, domain.NewUser("alice", "a@example.com", "pw"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)

	_, err = repo.Create(ctx, domain.NewUser("alice", "other@example.com", "pw2"))
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	bob, err := repo.Create(ctx, domain.NewUser("bob", "b@example.com", "pw"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)
}

func TestRepository_UsernameIsExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, err := repo.Create(ctx, domain.NewUser("Alice", "a@example.com", "pw"))
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, err := repo.Create(ctx, domain.NewUser("alice", "a@example.com", "pw"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alice"))
	require.NoError(t, repo.Delete(ctx, "alice"))
	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_SaveKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created, err := repo.Create(ctx, domain.NewUser("alice", "a@example.com", "pw"))
	require.NoError(t, err)

	saved, err := repo.Save(ctx, &domain.User{Username: "alice", Email: "new@example.com", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, saved.ID)
	assert.Equal(t, "new@example.com", saved.Email)

	_, err = repo.Save(ctx, &domain.User{Username: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
