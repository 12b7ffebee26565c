package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// dbFileRepository 直接访问数据库的 FileRepository 实现
type dbFileRepository struct {
	db *gorm.DB
}

var _ FileRepository = (*dbFileRepository)(nil)

// NewFileRepository 创建一个新的 FileRepository 实例
func NewFileRepository(db *gorm.DB) FileRepository {
	return &dbFileRepository{db: db}
}

func (r *dbFileRepository) Create(ctx context.Context, file *models.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		logger.Error("Create: Failed to create file in DB", zap.String("uploadedBy", file.UploadedBy), zap.String("fileName", file.FileName), zap.Error(err))
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

func (r *dbFileRepository) FindByID(ctx context.Context, id uint64) (*models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrFileNotFound // 文件未找到
		}
		return nil, fmt.Errorf("failed to find file %d: %w", id, err)
	}
	return &file, nil
}

func (r *dbFileRepository) FindMaxVersion(ctx context.Context, fileName, uploadedBy string) (uint, error) {
	// MAX 在没有记录时返回 NULL, 用指针区分
	var maxVersion *uint
	err := r.db.WithContext(ctx).
		Model(&models.File{}).
		Where("filename = ? AND uploaded_by = ?", fileName, uploadedBy).
		Select("MAX(version)").
		Scan(&maxVersion).Error
	if err != nil {
		logger.Error("FindMaxVersion: query failed", zap.String("fileName", fileName), zap.String("uploadedBy", uploadedBy), zap.Error(err))
		return 0, fmt.Errorf("failed to find latest version: %w", err)
	}
	if maxVersion == nil {
		return 0, nil
	}
	return *maxVersion, nil
}

func (r *dbFileRepository) filtered(ctx context.Context, filter models.FileFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.File{})
	if filter.UploadedBy != "" {
		query = query.Where("uploaded_by = ?", filter.UploadedBy)
	}
	if filter.FileName != "" {
		query = query.Where(filenameContains, containsPattern(filter.FileName))
	}
	return query
}

func (r *dbFileRepository) List(ctx context.Context, filter models.FileFilter, order Order, offset, limit int) ([]models.File, error) {
	var files []models.File
	query := r.filtered(ctx, filter).Order(order.Clause()).Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&files).Error; err != nil {
		logger.Error("List: Failed to list files", zap.Any("filter", filter), zap.Error(err))
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

func (r *dbFileRepository) Count(ctx context.Context, filter models.FileFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return total, nil
}

func (r *dbFileRepository) DeleteByID(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.File{}, id)
	if result.Error != nil {
		logger.Error("DeleteByID: Failed to delete file", zap.Uint64("fileID", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return xerr.ErrFileNotFound
	}
	return nil
}
