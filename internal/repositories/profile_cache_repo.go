package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"go.uber.org/zap"
)

// cachedProfileRepository 在数据库前面加一层角色缓存
type cachedProfileRepository struct {
	next  ProfileRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProfileRepository 包装 next, 命中缓存时不再查询数据库
func NewCachedProfileRepository(next ProfileRepository, c cache.Cache, ttl time.Duration) ProfileRepository {
	return &cachedProfileRepository{next: next, cache: c, ttl: ttl}
}

func (r *cachedProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	key := cache.GenerateRoleKey(email)
	var cached models.Profile
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// 缓存故障不影响查询, 直接回源
		logger.Warn("FindByEmail: role cache read failed", zap.String("email", email), zap.Error(err))
	}

	profile, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, profile, r.ttl); err != nil {
		logger.Warn("FindByEmail: role cache write failed", zap.String("email", email), zap.Error(err))
	}
	return profile, nil
}

func (r *cachedProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	if err := r.next.Upsert(ctx, profile); err != nil {
		return err
	}
	return r.cache.Del(ctx, cache.GenerateRoleKey(profile.Email))
}

// Evict 删除某个邮箱的角色缓存
func Evict(ctx context.Context, c cache.Cache, email string) error {
	return c.Del(ctx, cache.GenerateRoleKey(email))
}
