package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionEvent 会话变更事件
type SessionEvent string

const (
	EventSignedIn  SessionEvent = "SIGNED_IN"
	EventSignedOut SessionEvent = "SIGNED_OUT"
)

// SessionListener 在事件发生的 goroutine 中同步调用
type SessionListener func(event SessionEvent, session *models.Session)

type SessionProvider interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
	GetCurrentSession(ctx context.Context, token string) (*models.Session, error)
	// Subscribe 返回取消订阅函数, 关闭时必须调用
	Subscribe(listener SessionListener) (unsubscribe func())
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// sessionRecord 保存在缓存中的服务端会话
type sessionRecord struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionProvider struct {
	userRepo repositories.UserRepository
	cache    cache.Cache
	cfg      *config.JWTConfig

	mu        sync.RWMutex
	listeners map[uint64]SessionListener
	nextID    uint64
}

// 确保sessionProvider实现了SessionProvider的方法
var _ SessionProvider = (*sessionProvider)(nil)

func NewSessionProvider(userRepo repositories.UserRepository, c cache.Cache, cfg *config.JWTConfig) SessionProvider {
	return &sessionProvider{
		userRepo:  userRepo,
		cache:     c,
		cfg:       cfg,
		listeners: make(map[uint64]SessionListener),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *sessionProvider) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", xerr.ErrInvalidParams)
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.ErrInvalidParams, err)
	}

	//检查邮箱是否存在
	existing, err := p.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, xerr.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, xerr.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := p.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in database: %w", err)
	}

	logger.Info("User registered successfully", zap.String("email", user.Email))
	return user, nil
}

func (p *sessionProvider) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)
	user, err := p.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerr.ErrUserNotFound) {
			// 不区分用户不存在和密码错误
			return nil, xerr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, xerr.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := utils.GenerateToken(sessionID, user.Email, p.cfg.SecretKey, p.cfg.Issuer, p.cfg.ExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	record := sessionRecord{Email: user.Email, ExpiresAt: expiresAt}
	if err := p.cache.Set(ctx, cache.GenerateSessionKey(sessionID), record, p.cfg.ExpiresIn); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	session := &models.Session{
		ID:        sessionID,
		Token:     token,
		User:      models.SessionUser{Email: user.Email},
		ExpiresAt: expiresAt,
	}
	logger.Info("SignIn: session created", zap.String("email", user.Email), zap.String("sessionID", sessionID))
	p.emit(EventSignedIn, session)
	return session, nil
}

func (p *sessionProvider) GetCurrentSession(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ParseToken(token, p.cfg.SecretKey, p.cfg.Issuer)
	if err != nil {
		logger.Debug("GetCurrentSession: invalid token", zap.Error(err))
		return nil, xerr.ErrTokenInvalid
	}

	var record sessionRecord
	err = p.cache.Get(ctx, cache.GenerateSessionKey(claims.ID), &record)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			// 已注销或已过期
			return nil, xerr.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if record.Email != claims.Email {
		return nil, xerr.ErrTokenInvalid
	}

	return &models.Session{
		ID:        claims.ID,
		Token:     token,
		User:      models.SessionUser{Email: record.Email},
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (p *sessionProvider) SignOut(ctx context.Context, token string) error {
	session, err := p.GetCurrentSession(ctx, token)
	if err != nil {
		return err
	}
	if err := p.cache.Del(ctx, cache.GenerateSessionKey(session.ID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logger.Info("SignOut: session removed", zap.String("email", session.User.Email), zap.String("sessionID", session.ID))
	p.emit(EventSignedOut, session)
	return nil
}

func (p *sessionProvider) Subscribe(listener SessionListener) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = listener
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// emit 在锁外调用监听器, 监听器内可以安全地取消订阅
func (p *sessionProvider) emit(event SessionEvent, session *models.Session) {
	p.mu.RLock()
	listeners := make([]SessionListener, 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.RUnlock()

	for _, l := range listeners {
		l(event, session)
	}
}
