package report

import (
	"context"
	"fmt"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"go.uber.org/zap"
)

// maxExportRows scope=all 导出时的行数上限
const maxExportRows = 10000

type Summary struct {
	TotalFiles    int64 `json:"total_files"`
	TotalLogs     int64 `json:"total_logs"`
	UploadsOnPage int   `json:"uploads_on_page"` // 当前日志页中 upload 的条数
}

type Service interface {
	Files(ctx context.Context, filter models.FileFilter, page int) models.Page[models.File]
	Logs(ctx context.Context, page int) models.Page[models.FileLog]
	Summary(ctx context.Context, logPage int) Summary
	WeeklyChart(ctx context.Context, loc *time.Location) WeeklyChart
	// AllFiles / AllLogs 供导出使用, 读取失败时返回错误
	AllFiles(ctx context.Context) ([]models.File, error)
	AllLogs(ctx context.Context) ([]models.FileLog, error)
	PageSize() int
}

type service struct {
	fileRepo repositories.FileRepository
	logRepo  repositories.FileLogRepository
	pageSize int
	loc      *time.Location
	now      func() time.Time
}

var _ Service = (*service)(nil)

func NewService(fileRepo repositories.FileRepository, logRepo repositories.FileLogRepository, pageSize int, loc *time.Location) Service {
	if pageSize <= 0 {
		pageSize = 6
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		fileRepo: fileRepo,
		logRepo:  logRepo,
		pageSize: pageSize,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *service) PageSize() int { return s.pageSize }

func (s *service) Files(ctx context.Context, filter models.FileFilter, page int) models.Page[models.File] {
	if page < 1 {
		page = 1
	}
	total, err := s.fileRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("Files: failed to count files", zap.Error(err))
		return models.NewPage[models.File](nil, page, s.pageSize, 0)
	}
	files, err := s.fileRepo.List(ctx, filter, repositories.DefaultOrder, models.Offset(page, s.pageSize), s.pageSize)
	if err != nil {
		logger.Error("Files: failed to list files", zap.Int("page", page), zap.Error(err))
		return models.NewPage[models.File](nil, page, s.pageSize, 0)
	}
	return models.NewPage(files, page, s.pageSize, total)
}

func (s *service) Logs(ctx context.Context, page int) models.Page[models.FileLog] {
	if page < 1 {
		page = 1
	}
	total, err := s.logRepo.Count(ctx)
	if err != nil {
		logger.Error("Logs: failed to count logs", zap.Error(err))
		return models.NewPage[models.FileLog](nil, page, s.pageSize, 0)
	}
	logs, err := s.logRepo.List(ctx, repositories.DefaultOrder, models.Offset(page, s.pageSize), s.pageSize)
	if err != nil {
		logger.Error("Logs: failed to list logs", zap.Int("page", page), zap.Error(err))
		return models.NewPage[models.FileLog](nil, page, s.pageSize, 0)
	}
	return models.NewPage(logs, page, s.pageSize, total)
}

func (s *service) Summary(ctx context.Context, logPage int) Summary {
	var summary Summary
	var err error
	if summary.TotalFiles, err = s.fileRepo.Count(ctx, models.FileFilter{}); err != nil {
		logger.Error("Summary: failed to count files", zap.Error(err))
	}
	logs := s.Logs(ctx, logPage)
	summary.TotalLogs = logs.Total
	for _, l := range logs.Items {
		if l.Action == models.ActionUpload {
			summary.UploadsOnPage++
		}
	}
	return summary
}

func (s *service) WeeklyChart(ctx context.Context, loc *time.Location) WeeklyChart {
	if loc == nil {
		loc = s.loc
	}
	now := s.now()
	entries, err := s.logRepo.ListSince(ctx, windowStart(now, loc))
	if err != nil {
		logger.Error("WeeklyChart: failed to load logs", zap.Error(err))
		return WeeklyUploads(nil, now, loc)
	}
	return WeeklyUploads(entries, now, loc)
}

func (s *service) AllFiles(ctx context.Context) ([]models.File, error) {
	files, err := s.fileRepo.List(ctx, models.FileFilter{}, repositories.DefaultOrder, 0, maxExportRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	return files, nil
}

func (s *service) AllLogs(ctx context.Context) ([]models.FileLog, error) {
	logs, err := s.logRepo.List(ctx, repositories.DefaultOrder, 0, maxExportRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	return logs, nil
}
