package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilhete-backend/internal/repository/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		user, err := repo.Create(ctx,
			testutil.StringPtr("Ana"),
			testutil.StringPtr("ana@x.com"),
			testutil.StringPtr("digest"),
		)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Positive(t, user.ID)
		assert.Equal(t, "Ana", *user.Name)
		assert.Equal(t, "ana@x.com", *user.Email)
		assert.True(t, user.Balance.IsZero())
		assert.Equal(t, "0.00", user.Balance.StringFixed(2))
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx,
			testutil.StringPtr("Bruno"),
			testutil.StringPtr("bruno@x.com"),
			testutil.StringPtr("digest"),
		)
		require.NoError(t, err)

		_, err = repo.Create(ctx,
			testutil.StringPtr("Outro Bruno"),
			testutil.StringPtr("bruno@x.com"),
			testutil.StringPtr("other"),
		)
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))

		count, err := repo.CountByEmail(ctx, "bruno@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing email is rejected by the store", func(t *testing.T) {
		_, err := repo.Create(ctx, testutil.StringPtr("Sem Email"), nil, testutil.StringPtr("digest"))
		require.Error(t, err)
		assert.False(t, IsUniqueViolation(err))
	})

	t.Run("missing name is stored as null", func(t *testing.T) {
		user, err := repo.Create(ctx, nil, testutil.StringPtr("anon@x.com"), testutil.StringPtr("digest"))
		require.NoError(t, err)
		assert.Nil(t, user.Name)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		created, err := repo.Create(ctx,
			testutil.StringPtr("Carla"),
			testutil.StringPtr("carla@x.com"),
			testutil.StringPtr("abc123"),
		)
		require.NoError(t, err)

		user, err := repo.GetByEmail(ctx, "carla@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "abc123", *user.PasswordDigest)
		assert.True(t, created.Balance.Equal(user.Balance))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(context.Canceled))
}
