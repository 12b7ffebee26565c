package admin

import (
	"context"
	"fmt"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"go.uber.org/zap"
)

// UserProfile 当前用户信息
type UserProfile struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Privileged bool   `json:"privileged"`
}

type UserService interface {
	GetUserProfile(ctx context.Context, actor models.Actor) (*UserProfile, error)
	// SetRole 只供运维命令使用
	SetRole(ctx context.Context, email, role string) error
}

type userService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

var _ UserService = (*userService)(nil)

func NewUserService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) UserService {
	return &userService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *userService) GetUserProfile(ctx context.Context, actor models.Actor) (*UserProfile, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, actor.Email)
	if err != nil {
		logger.Error("GetUserProfile: Error retrieving user from DB",
			zap.String("email", actor.Email),
			zap.Error(err))
		return nil, err
	}
	return &UserProfile{
		Email:      user.Email,
		Role:       actor.Role,
		Privileged: actor.IsPrivileged(),
	}, nil
}

func (s *userService) SetRole(ctx context.Context, email, role string) error {
	if !models.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", xerr.ErrInvalidParams, role)
	}
	email = normalizeEmail(email)
	if err := s.profileRepo.Upsert(ctx, &models.Profile{Email: email, Role: role}); err != nil {
		return fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	logger.Info("SetRole: profile updated", zap.String("email", email), zap.String("role", role))
	return nil
}
