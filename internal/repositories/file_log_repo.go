package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileLogRepository 操作日志 (file_logs 表), 只追加
type FileLogRepository interface {
	Append(ctx context.Context, entry *models.FileLog) error
	List(ctx context.Context, order Order, offset, limit int) ([]models.FileLog, error)
	Count(ctx context.Context) (int64, error)
	// ListSince 返回 since 之后 (含) 的全部日志, 用于周图表
	ListSince(ctx context.Context, since time.Time) ([]models.FileLog, error)
	// SearchByFileName 按文件名模糊查询, 搜索服务不可用时的回退
	SearchByFileName(ctx context.Context, keyword string, limit int) ([]models.FileLog, error)
}

type fileLogRepository struct {
	db *gorm.DB
}

var _ FileLogRepository = (*fileLogRepository)(nil)

func NewFileLogRepository(db *gorm.DB) FileLogRepository {
	return &fileLogRepository{db: db}
}

func (r *fileLogRepository) Append(ctx context.Context, entry *models.FileLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Error("Append: Failed to write file log", zap.String("action", entry.Action), zap.String("fileName", entry.FileName), zap.Error(err))
		return fmt.Errorf("failed to append file log: %w", err)
	}
	return nil
}

func (r *fileLogRepository) List(ctx context.Context, order Order, offset, limit int) ([]models.FileLog, error) {
	var logs []models.FileLog
	query := r.db.WithContext(ctx).Order(order.Clause()).Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list file logs: %w", err)
	}
	return logs, nil
}

func (r *fileLogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FileLog{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count file logs: %w", err)
	}
	return total, nil
}

func (r *fileLogRepository) ListSince(ctx context.Context, since time.Time) ([]models.FileLog, error) {
	var logs []models.FileLog
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at asc").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list file logs since %s: %w", since.Format(time.RFC3339), err)
	}
	return logs, nil
}

func (r *fileLogRepository) SearchByFileName(ctx context.Context, keyword string, limit int) ([]models.FileLog, error) {
	var logs []models.FileLog
	query := r.db.WithContext(ctx).
		Where(filenameContains, containsPattern(keyword)).
		Order(DefaultOrder.Clause())
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to search file logs: %w", err)
	}
	return logs, nil
}
