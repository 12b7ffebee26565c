package router

import (
	"net/http"

	_ "github.com/3Eeeecho/go-fileportal/docs"
	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/handlers"
	"github.com/3Eeeecho/go-fileportal/internal/middlewares"
	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/services/activity"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/3Eeeecho/go-fileportal/internal/services/explorer"
	"github.com/3Eeeecho/go-fileportal/internal/services/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig 包含初始化路由所需的所有依赖
type RouterConfig struct {
	Sessions      admin.SessionProvider
	Roles         admin.RoleResolver
	UserService   admin.UserService
	UploadService explorer.UploadService
	FileService   explorer.FileService
	ReportService report.Service
	Recorder      activity.Recorder
	Cfg           *config.Config
}

func InitRouter(rc *RouterConfig) *gin.Engine {
	// 设置 Gin 模式，开发环境为 DebugMode，生产环境为 ReleaseMode
	if rc.Cfg.Server.Mode != "" {
		gin.SetMode(rc.Cfg.Server.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.MetricsMiddleware())
	router.MaxMultipartMemory = 32 << 20

	// Health Check 路由
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// 认证相关路由 (无需认证)
		v1.POST("/auth/login", handlers.Login(rc.Sessions, rc.Roles))

		// 需要认证的路由组
		authenticated := v1.Group("/")
		authenticated.Use(middlewares.AuthMiddleware(rc.Sessions, rc.Roles))

		authGroup := authenticated.Group("/auth")
		{
			authGroup.POST("/logout", handlers.Logout(rc.Sessions))
			authGroup.GET("/session", handlers.CurrentSession())
		}

		// 用户相关路由
		userGroup := authenticated.Group("/users")
		{
			userGroup.GET("/me", handlers.GetUserProfile(rc.UserService))
		}

		// 文件相关路由
		fileGroup := authenticated.Group("/files")
		{
			fileGroup.GET("", handlers.ListFiles(rc.FileService, rc.Cfg.Report.PageSize))
			fileGroup.POST("/upload", handlers.UploadFile(rc.UploadService, rc.Cfg.Server.MaxUploadMB))
			fileGroup.GET("/:id/download", handlers.DownloadFile(rc.FileService))
			fileGroup.DELETE("/:id", handlers.DeleteFile(rc.FileService))
		}

		// 报表只对 manager 和 admin 开放
		reportGroup := authenticated.Group("/reports")
		reportGroup.Use(middlewares.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			reportGroup.GET("/summary", handlers.ReportSummary(rc.ReportService))
			reportGroup.GET("/files", handlers.ReportFiles(rc.ReportService))
			reportGroup.GET("/logs", handlers.ReportLogs(rc.ReportService))
			reportGroup.GET("/logs/search", handlers.SearchLogs(rc.Recorder))
			reportGroup.GET("/chart/weekly", handlers.WeeklyChart(rc.ReportService))
			reportGroup.GET("/export/bundle", handlers.ExportBundle(rc.ReportService))
			reportGroup.GET("/export/:dataset", handlers.ExportDataset(rc.ReportService))
		}
	}

	return router
}
