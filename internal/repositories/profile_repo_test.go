package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	_, err := repo.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, xerr.ErrProfileNotFound)

	require.NoError(t, repo.Upsert(ctx, &models.Profile{Email: "a@x.com", Role: models.RoleAdmin}))
	require.NoError(t, repo.Upsert(ctx, &models.Profile{Email: "a@x.com", Role: models.RoleEmployee}))

	p, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, p.Role)
}

func TestCachedProfileUpsertEvictsRole(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Hour, time.Hour)
	repo := NewCachedProfileRepository(NewProfileRepository(newTestDB(t)), c, time.Hour)

	require.NoError(t, repo.Upsert(ctx, &models.Profile{Email: "a@x.com", Role: models.RoleAdmin}))
	p, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, p.Role)
	ok, _ := c.Exists(ctx, cache.GenerateRoleKey("a@x.com"))
	assert.True(t, ok)

	require.NoError(t, repo.Upsert(ctx, &models.Profile{Email: "a@x.com", Role: models.RoleEmployee}))
	p, err = repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, p.Role)
}
