package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/storage"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/3Eeeecho/go-fileportal/internal/services/activity"
	"go.uber.org/zap"
)

type FileService interface {
	// List 查询失败时记录日志并返回空列表
	List(ctx context.Context, filter models.FileFilter, page, pageSize int) models.Page[models.File]
	GetFileByID(ctx context.Context, fileID uint64) (*models.File, error)
	// Download 返回文件记录和对象内容, 调用方负责关闭 Reader
	Download(ctx context.Context, fileID uint64) (*models.File, storage.GetObjectResult, error)
	Delete(ctx context.Context, actor models.Actor, fileID uint64) error
}

type fileService struct {
	fileRepo repositories.FileRepository
	storage  storage.StorageService
	recorder activity.Recorder
	bucket   string
}

func NewFileService(
	fileRepo repositories.FileRepository,
	ss storage.StorageService,
	recorder activity.Recorder,
	bucket string,
) FileService {
	return &fileService{
		fileRepo: fileRepo,
		storage:  ss,
		recorder: recorder,
		bucket:   bucket,
	}
}

func (s *fileService) List(ctx context.Context, filter models.FileFilter, page, pageSize int) models.Page[models.File] {
	if page < 1 {
		page = 1
	}
	total, err := s.fileRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("List: failed to count files", zap.Any("filter", filter), zap.Error(err))
		return models.NewPage[models.File](nil, page, pageSize, 0)
	}
	files, err := s.fileRepo.List(ctx, filter, repositories.DefaultOrder, models.Offset(page, pageSize), pageSize)
	if err != nil {
		logger.Error("List: failed to list files", zap.Any("filter", filter), zap.Error(err))
		return models.NewPage[models.File](nil, page, pageSize, 0)
	}
	return models.NewPage(files, page, pageSize, total)
}

func (s *fileService) GetFileByID(ctx context.Context, fileID uint64) (*models.File, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, xerr.ErrFileNotFound) {
			logger.Warn("GetFileByID: File not found", zap.Uint64("fileID", fileID))
			return nil, err
		}
		logger.Error("GetFileByID: Error retrieving file from DB", zap.Uint64("fileID", fileID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	return file, nil
}

func (s *fileService) Download(ctx context.Context, fileID uint64) (*models.File, storage.GetObjectResult, error) {
	file, err := s.GetFileByID(ctx, fileID)
	if err != nil {
		return nil, storage.GetObjectResult{}, err
	}

	obj, err := s.storage.GetObject(ctx, s.bucket, ObjectPath(file))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			logger.Warn("Download: object missing for file record", zap.Uint64("fileID", fileID), zap.String("path", ObjectPath(file)))
			return nil, storage.GetObjectResult{}, xerr.ErrFileNotFound
		}
		logger.Error("Download: failed to read object", zap.Uint64("fileID", fileID), zap.Error(err))
		return nil, storage.GetObjectResult{}, fmt.Errorf("%w: %v", xerr.ErrStorageError, err)
	}
	if obj.MimeType == "" {
		obj.MimeType = file.MimeType
	}
	return file, obj, nil
}

// Delete 依次删除存储对象、文件记录, 再追加 delete 日志
// 权限检查在任何写操作之前完成; 存储删除失败时保留记录
func (s *fileService) Delete(ctx context.Context, actor models.Actor, fileID uint64) error {
	file, err := s.GetFileByID(ctx, fileID)
	if err != nil {
		deletesTotal.WithLabelValues(resultFailure).Inc()
		return err
	}
	if err := checkDeletable(actor, file); err != nil {
		deletesTotal.WithLabelValues(resultDenied).Inc()
		return err
	}

	objectPath := ObjectPath(file)
	if err := s.storage.RemoveObject(ctx, s.bucket, objectPath); err != nil {
		deletesTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Delete: failed to remove object, record kept", zap.Uint64("fileID", fileID), zap.String("path", objectPath), zap.Error(err))
		return fmt.Errorf("%w: %v", xerr.ErrStorageError, err)
	}

	if err := s.fileRepo.DeleteByID(ctx, fileID); err != nil {
		deletesTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Delete: failed to delete file record after object removal", zap.Uint64("fileID", fileID), zap.Error(err))
		if errors.Is(err, xerr.ErrFileNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}

	if err := s.recorder.Record(ctx, models.ActionDelete, file.FileName, actor.Email); err != nil {
		deletesTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Delete: failed to append delete log", zap.Uint64("fileID", fileID), zap.Error(err))
		return err
	}

	deletesTotal.WithLabelValues(resultSuccess).Inc()
	logger.Info("Delete: file deleted",
		zap.Uint64("fileID", fileID),
		zap.String("fileName", file.FileName),
		zap.String("actor", actor.Email))
	return nil
}
