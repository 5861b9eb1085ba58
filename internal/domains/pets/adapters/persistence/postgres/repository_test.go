package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/domains/pets/domain"
)

func TestRepository_UnconfiguredReturnsError(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	require.NotPanics(t, func() {
		_, err := repo.FindByStatus(ctx, domain.StatusAvailable)
		assert.EqualError(t, err, "postgres pet repository not configured")

		_, err = repo.List(ctx)
		assert.EqualError(t, err, "postgres pet repository not configured")

		_, err = repo.GetByID(ctx, 1)
		assert.Error(t, err)
	})
}
