package explorer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/storage"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/3Eeeecho/go-fileportal/internal/services/activity"
	"go.uber.org/zap"
)

// Stage 上传进度节点
type Stage string

const (
	StageStart    Stage = "start"
	StageStored   Stage = "stored"
	StageRecorded Stage = "recorded"
	StageComplete Stage = "complete"
)

var stagePercent = map[Stage]int{
	StageStart:    10,
	StageStored:   40,
	StageRecorded: 70,
	StageComplete: 100,
}

// ProgressFunc 上传进度回调, 仅用于界面反馈
type ProgressFunc func(stage Stage, percent int)

type UploadInput struct {
	FileName string // 用户上传时的原始文件名
	Size     int64
	MimeType string
	Reader   io.Reader
}

type UploadService interface {
	Upload(ctx context.Context, actor models.Actor, in UploadInput, progress ProgressFunc) (*models.File, error)
}

type uploadService struct {
	fileRepo repositories.FileRepository
	storage  storage.StorageService
	recorder activity.Recorder
	bucket   string
	now      func() time.Time
}

func NewUploadService(
	fileRepo repositories.FileRepository,
	ss storage.StorageService,
	recorder activity.Recorder,
	bucket string,
) UploadService {
	return &uploadService{
		fileRepo: fileRepo,
		storage:  ss,
		recorder: recorder,
		bucket:   bucket,
		now:      time.Now,
	}
}

// Upload 计算下一个版本号, 写入存储, 再写文件记录和操作日志
// 各步骤之间没有回滚: 记录写入失败时已上传的对象会被遗留
func (s *uploadService) Upload(ctx context.Context, actor models.Actor, in UploadInput, progress ProgressFunc) (*models.File, error) {
	if progress == nil {
		progress = func(Stage, int) {}
	}
	report := func(stage Stage) { progress(stage, stagePercent[stage]) }

	if strings.TrimSpace(in.FileName) == "" || SanitizeFileName(in.FileName) == "" {
		uploadsTotal.WithLabelValues(resultFailure).Inc()
		return nil, xerr.ErrFileNameInvalid
	}
	if actor.Email == "" {
		uploadsTotal.WithLabelValues(resultFailure).Inc()
		return nil, xerr.ErrUnauthorized
	}
	report(StageStart)

	// 版本号为先读后写, 并发上传同名文件可能得到相同版本, 路径里的时间戳保证对象不冲突
	maxVersion, err := s.fileRepo.FindMaxVersion(ctx, in.FileName, actor.Email)
	if err != nil {
		uploadsTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Upload: failed to query latest version", zap.String("fileName", in.FileName), zap.String("actor", actor.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	version := maxVersion + 1

	objectPath := BuildStoragePath(actor.Email, in.FileName, version, s.now())
	contentType := in.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	put, err := s.storage.PutObject(ctx, s.bucket, objectPath, in.Reader, in.Size, contentType)
	if err != nil {
		uploadsTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Upload: failed to write object", zap.String("path", objectPath), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xerr.ErrStorageError, err)
	}
	uploadBytesTotal.Add(float64(put.Size))
	report(StageStored)

	file := &models.File{
		FileName:    in.FileName,
		Version:     version,
		UploadedBy:  actor.Email,
		URL:         s.storage.GetObjectURL(s.bucket, objectPath),
		StoragePath: objectPath,
		Size:        put.Size,
		MimeType:    contentType,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		uploadsTotal.WithLabelValues(resultFailure).Inc()
		logger.Error("Upload: failed to create file record, object left in store",
			zap.String("path", objectPath), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xerr.ErrDatabaseError, err)
	}
	report(StageRecorded)

	// 文件记录已存在即视为上传成功, 日志失败只记录告警
	if err := s.recorder.Record(ctx, models.ActionUpload, file.FileName, actor.Email); err != nil {
		logger.Warn("Upload: failed to append upload log", zap.Uint64("fileID", file.ID), zap.Error(err))
	}
	report(StageComplete)

	uploadsTotal.WithLabelValues(resultSuccess).Inc()
	logger.Info("Upload: file uploaded",
		zap.Uint64("fileID", file.ID),
		zap.String("fileName", file.FileName),
		zap.Uint("version", file.Version),
		zap.String("actor", actor.Email))
	return file, nil
}
