package admin

import (
	"context"
	"sync"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"go.uber.org/zap"
)

func init() {
	logger.SetLogger(zap.NewNop())
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uint64(len(r.users) + 1)
	r.users[user.Email] = *user
	return nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, xerr.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = *user
	return nil
}

type memProfileRepo struct {
	profiles map[string]string
	err      error
	lookups  int
}

func (r *memProfileRepo) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	role, ok := r.profiles[email]
	if !ok {
		return nil, xerr.ErrProfileNotFound
	}
	return &models.Profile{Email: email, Role: role}, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, p *models.Profile) error {
	if r.profiles == nil {
		r.profiles = make(map[string]string)
	}
	r.profiles[p.Email] = p.Role
	return nil
}
