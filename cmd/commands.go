package main

import (
	"context"
	"fmt"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/3Eeeecho/go-fileportal/internal/setup"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// withDB 为一次性运维命令打开数据库, 执行完毕后关闭
func withDB(load configLoader, fn func(ctx context.Context, cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	db, err := setup.InitDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer setup.CloseDatabase(db)
	return fn(context.Background(), cfg, db)
}

func newMigrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(load, func(_ context.Context, _ *config.Config, db *gorm.DB) error {
				if err := setup.AutoMigrate(db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
				return nil
			})
		},
	}
}

func newUserCommand(load configLoader) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage portal accounts",
	}

	var email, password string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(load, func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				// 注册不涉及会话, 进程内缓存即可
				sessions := admin.NewSessionProvider(repositories.NewUserRepository(db), cache.NewMemoryCache(cfg.JWT.ExpiresIn, cfg.Redis.RoleTTL), &cfg.JWT)
				user, err := sessions.Register(ctx, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %s created (id=%d)\n", user.Email, user.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&email, "email", "", "account email")
	addCmd.Flags().StringVar(&password, "password", "", "account password")
	_ = addCmd.MarkFlagRequired("email")
	_ = addCmd.MarkFlagRequired("password")

	userCmd.AddCommand(addCmd)
	return userCmd
}

func newProfileCommand(load configLoader) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage role profiles",
	}

	var email, role string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Assign a role (admin, manager, employee) to an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(load, func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				// 与服务端共用角色缓存, Upsert 后清除旧角色
				appCache, redisClient, err := setup.InitCache(ctx, cfg)
				if err != nil {
					return err
				}
				defer setup.CloseRedis(redisClient)

				profiles := repositories.NewCachedProfileRepository(repositories.NewProfileRepository(db), appCache, cfg.Redis.RoleTTL)
				users := admin.NewUserService(repositories.NewUserRepository(db), profiles)
				if err := users.SetRole(ctx, email, role); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "role of %s set to %s\n", email, role)
				return nil
			})
		},
	}
	setCmd.Flags().StringVar(&email, "email", "", "profile email")
	setCmd.Flags().StringVar(&role, "role", "", "admin, manager or employee")
	_ = setCmd.MarkFlagRequired("email")
	_ = setCmd.MarkFlagRequired("role")

	profileCmd.AddCommand(setCmd)
	return profileCmd
}
