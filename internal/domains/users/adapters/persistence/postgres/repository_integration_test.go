//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/petstore-api/internal/domains/users/domain"
	"github.com/Apurer/petstore-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/petstore-api/internal/platform/postgres"
)

func setupUsersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("petstore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), platformpostgres.Config())
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_CreateAndGetByUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, domain.NewUser("alice", "alice@example.com", "secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	fetched, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, saved, fetched)

	_, err = repo.Create(ctx, domain.NewUser("alice", "x@example.com", "x"))
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestRepository_Save(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, domain.NewUser("alice", "alice@example.com", "secret"))
	require.NoError(t, err)

	user.ChangeContact("alice.smith@example.com", "new")
	updated, err := repo.Save(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "alice.smith@example.com", updated.Email)
	assert.Equal(t, "new", updated.Password)

	_, err = repo.Save(ctx, domain.NewUser("ghost", "g@example.com", "g"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, name := range []string{"user1", "user2", "user3"} {
		_, err := repo.Create(ctx, domain.NewUser(name, name+"@example.com", "secret"))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "user2"))
	require.NoError(t, repo.Delete(ctx, "user2"))

	for _, name := range []string{"user1", "user3"} {
		user, err := repo.GetByUsername(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, name, user.Username)
	}
	_, err := repo.GetByUsername(ctx, "user2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
