package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/3Eeeecho/go-fileportal/cmd/server"
	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/spf13/cobra"
)

//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../docs

// @title           File Portal API
// @version         1.0
// @description     内部文件共享门户: 版本化上传, 下载, 删除, 操作日志与报表导出
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "fileportal",
		Short:         "Versioned file sharing portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file (default ./config.yaml)")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("加载配置出错: %w", err)
		}
		//初始化日志系统
		if err = os.MkdirAll("logs", 0755); err != nil {
			return nil, fmt.Errorf("初始化日志系统失败: %w", err)
		}
		logger.InitLogger(cfg.Log.OutputPath, cfg.Log.ErrorPath, cfg.Log.Level)
		return cfg, nil
	}

	rootCmd.AddCommand(newServeCommand(load))
	rootCmd.AddCommand(newMigrateCommand(load))
	rootCmd.AddCommand(newUserCommand(load))
	rootCmd.AddCommand(newProfileCommand(load))
	return rootCmd
}

type configLoader func() (*config.Config, error)

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Sync() // 确保在应用退出时刷新所有缓冲的日志条目

			logger.Info("启动文件门户...")

			// 创建并构建应用服务器实例
			srv, err := server.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("无法启动应用程序: %w", err)
			}

			// 创建一个通道用于接收停止信号
			stopChan := make(chan os.Signal, 1)
			signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

			if err = srv.Run(context.Background(), stopChan); err != nil {
				return err
			}
			logger.Info("文件门户已退出。")
			return nil
		},
	}
}
