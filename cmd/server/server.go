package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/3Eeeecho/go-fileportal/internal/router"
	"github.com/3Eeeecho/go-fileportal/internal/services/activity"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/3Eeeecho/go-fileportal/internal/services/explorer"
	"github.com/3Eeeecho/go-fileportal/internal/services/report"
	"github.com/3Eeeecho/go-fileportal/internal/setup"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	router      *gin.Engine
	httpServer  *http.Server
	db          *gorm.DB
	redisClient *redis.Client
	roles       admin.RoleResolver
}

// NewServer 负责构建所有依赖
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化数据库连接
	db, err := setup.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err = setup.AutoMigrate(db); err != nil {
		setup.CloseDatabase(db)
		return nil, err
	}

	// 初始化缓存, redis.addr 为空时退化为进程内缓存
	appCache, redisClient, err := setup.InitCache(context.Background(), cfg)
	if err != nil {
		setup.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	ss, err := setup.InitStorage(cfg)
	if err != nil {
		setup.CloseRedis(redisClient)
		setup.CloseDatabase(db)
		return nil, err
	}

	indexer, err := setup.InitIndexer(&cfg.Elasticsearch)
	if err != nil {
		setup.CloseRedis(redisClient)
		setup.CloseDatabase(db)
		return nil, err
	}

	//  初始化 Repositories
	fileRepo := repositories.NewFileRepository(db)
	logRepo := repositories.NewFileLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewCachedProfileRepository(repositories.NewProfileRepository(db), appCache, cfg.Redis.RoleTTL)

	//  初始化 Services
	recorder := activity.NewRecorder(logRepo, indexer)
	sessions := admin.NewSessionProvider(userRepo, appCache, &cfg.JWT)
	roles := admin.NewRoleResolver(profileRepo, appCache)
	roles.Start(sessions)

	rc := &router.RouterConfig{
		Sessions:      sessions,
		Roles:         roles,
		UserService:   admin.NewUserService(userRepo, profileRepo),
		UploadService: explorer.NewUploadService(fileRepo, ss, recorder, cfg.Storage.BucketName),
		FileService:   explorer.NewFileService(fileRepo, ss, recorder, cfg.Storage.BucketName),
		ReportService: report.NewService(fileRepo, logRepo, cfg.Report.PageSize, cfg.Report.Location()),
		Recorder:      recorder,
		Cfg:           cfg,
	}

	// 初始化 Gin 引擎和注册路由
	engine := router.InitRouter(rc)

	addr := ":" + cfg.Server.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		router:      engine,
		httpServer:  httpServer,
		db:          db,
		redisClient: redisClient,
		roles:       roles,
	}, nil
}

// Run 启动 HTTP 服务器并处理优雅关机
func (s *Server) Run(ctx context.Context, stopChan chan os.Signal) error {
	// 确保在应用关闭时，所有连接都被释放
	defer setup.CloseDatabase(s.db)
	defer setup.CloseRedis(s.redisClient)
	defer s.roles.Stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server is running", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// 等待停止信号
	select {
	case <-stopChan:
	case <-ctx.Done():
	case err := <-errChan:
		return fmt.Errorf("server failed to start: %w", err)
	}
	logger.Info("Shutting down server...")

	// 优雅关机
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited gracefully")
	return nil
}
