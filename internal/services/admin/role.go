package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"go.uber.org/zap"
)

const warmTimeout = 3 * time.Second

// RoleResolver 把邮箱映射为角色, 查询不到或出错时按最低权限 employee 处理
type RoleResolver interface {
	Resolve(ctx context.Context, email string) string
	// Start 订阅会话变更: 登录时预热角色缓存, 注销时清除
	Start(provider SessionProvider)
	Stop()
}

type roleResolver struct {
	profileRepo repositories.ProfileRepository
	cache       cache.Cache

	mu          sync.Mutex
	unsubscribe func()
}

var _ RoleResolver = (*roleResolver)(nil)

// NewRoleResolver profileRepo 通常是带缓存的实现, c 与其使用同一个缓存
func NewRoleResolver(profileRepo repositories.ProfileRepository, c cache.Cache) RoleResolver {
	return &roleResolver{profileRepo: profileRepo, cache: c}
}

func (r *roleResolver) Resolve(ctx context.Context, email string) string {
	if email == "" {
		return models.RoleEmployee
	}
	profile, err := r.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerr.ErrProfileNotFound) {
			logger.Debug("Resolve: no profile, using default role", zap.String("email", email))
		} else {
			logger.Warn("Resolve: profile lookup failed, using default role", zap.String("email", email), zap.Error(err))
		}
		return models.RoleEmployee
	}
	if !models.IsValidRole(profile.Role) {
		logger.Warn("Resolve: unknown role in profile", zap.String("email", email), zap.String("role", profile.Role))
		return models.RoleEmployee
	}
	return profile.Role
}

func (r *roleResolver) Start(provider SessionProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		return
	}
	r.unsubscribe = provider.Subscribe(r.onSessionChange)
}

func (r *roleResolver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

func (r *roleResolver) onSessionChange(event SessionEvent, session *models.Session) {
	if session == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	email := session.User.Email
	switch event {
	case EventSignedIn:
		// 每次登录都重新读取 profile 行, 角色变更在下次登录时生效
		if err := repositories.Evict(ctx, r.cache, email); err != nil {
			logger.Warn("failed to evict role cache", zap.String("email", email), zap.Error(err))
		}
		role := r.Resolve(ctx, email)
		logger.Debug("role cache warmed", zap.String("email", email), zap.String("role", role))
	case EventSignedOut:
		if err := repositories.Evict(ctx, r.cache, email); err != nil {
			logger.Warn("failed to evict role cache", zap.String("email", email), zap.Error(err))
		}
	}
}
