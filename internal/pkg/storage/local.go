package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LocalStorageService 把对象保存在本地磁盘 (或任意 afero 文件系统) 上
// 存储桶对应 basePath 下的一级目录
type LocalStorageService struct {
	fs            afero.Fs
	basePath      string
	publicBaseURL string
}

var _ StorageService = (*LocalStorageService)(nil)

func NewLocalStorageService(fsys afero.Fs, basePath, publicBaseURL string) *LocalStorageService {
	if publicBaseURL == "" {
		publicBaseURL = "/objects"
	}
	return &LocalStorageService{fs: fsys, basePath: basePath, publicBaseURL: publicBaseURL}
}

// objectPath 拒绝 . 和 .. 路径段, 防止逃逸出存储根目录
func (s *LocalStorageService) objectPath(bucketName, objectName string) (string, error) {
	for _, seg := range strings.Split(objectName, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("invalid object name %q", objectName)
		}
	}
	return filepath.Join(s.basePath, bucketName, filepath.FromSlash(objectName)), nil
}

func (s *LocalStorageService) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) (PutObjectResult, error) {
	p, err := s.objectPath(bucketName, objectName)
	if err != nil {
		return PutObjectResult{}, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return PutObjectResult{}, fmt.Errorf("本地存储创建目录失败: %w", err)
	}
	// O_EXCL: 同一路径不允许覆盖
	f, err := s.fs.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return PutObjectResult{}, fmt.Errorf("本地存储创建文件失败: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, reader)
	if err != nil {
		_ = s.fs.Remove(p)
		return PutObjectResult{}, fmt.Errorf("本地存储写入文件失败: %w", err)
	}
	logger.Debug("local object written", zap.String("path", p), zap.Int64("size", written))
	return PutObjectResult{Bucket: bucketName, Key: objectName, Size: written}, nil
}

func (s *LocalStorageService) GetObject(ctx context.Context, bucketName, objectName string) (GetObjectResult, error) {
	p, err := s.objectPath(bucketName, objectName)
	if err != nil {
		return GetObjectResult{}, err
	}
	f, err := s.fs.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return GetObjectResult{}, ErrObjectNotFound
		}
		return GetObjectResult{}, fmt.Errorf("本地存储打开文件失败: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return GetObjectResult{}, fmt.Errorf("本地存储读取文件信息失败: %w", err)
	}
	return GetObjectResult{
		Reader:   f,
		Size:     info.Size(),
		MimeType: mime.TypeByExtension(path.Ext(objectName)),
	}, nil
}

func (s *LocalStorageService) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	p, err := s.objectPath(bucketName, objectName)
	if err != nil {
		return err
	}
	// 与 S3 语义一致: 删除不存在的对象视为成功
	if err := s.fs.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("本地存储删除文件失败: %w", err)
	}
	return nil
}

func (s *LocalStorageService) IsBucketExist(ctx context.Context, bucketName string) (bool, error) {
	return afero.DirExists(s.fs, filepath.Join(s.basePath, bucketName))
}

func (s *LocalStorageService) MakeBucket(ctx context.Context, bucketName string) error {
	return s.fs.MkdirAll(filepath.Join(s.basePath, bucketName), 0o755)
}

func (s *LocalStorageService) GetObjectURL(bucketName, objectName string) string {
	return joinURL(s.publicBaseURL, bucketName, objectName)
}
