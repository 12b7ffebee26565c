package repositories

import (
	"context"

	"github.com/3Eeeecho/go-fileportal/internal/models"
)

// FileRepository 文件目录 (files 表) 的数据访问接口
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	FindByID(ctx context.Context, id uint64) (*models.File, error)
	// FindMaxVersion 返回 (filename, uploaded_by) 下最大的版本号, 没有记录时返回 0
	FindMaxVersion(ctx context.Context, fileName, uploadedBy string) (uint, error)
	List(ctx context.Context, filter models.FileFilter, order Order, offset, limit int) ([]models.File, error)
	Count(ctx context.Context, filter models.FileFilter) (int64, error)
	DeleteByID(ctx context.Context, id uint64) error
}
