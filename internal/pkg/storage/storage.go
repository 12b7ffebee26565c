package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/spf13/afero"
)

// StorageService 定义了通用的文件存储操作接口
type StorageService interface {
	// 上传文件到指定存储桶，返回存储对象的信息或错误
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) (PutObjectResult, error)
	// 从指定存储桶下载文件，返回一个读取器和对象信息
	GetObject(ctx context.Context, bucketName, objectName string) (GetObjectResult, error)
	// 从指定存储桶删除文件
	RemoveObject(ctx context.Context, bucketName, objectName string) error
	// 检查存储桶是否存在
	IsBucketExist(ctx context.Context, bucketName string) (bool, error)
	// 创建存储桶
	MakeBucket(ctx context.Context, bucketName string) error
	// 获取对象的公开访问URL
	GetObjectURL(bucketName, objectName string) string
}

type PutObjectResult struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string // 对象哈希值
}

type GetObjectResult struct {
	Reader   io.ReadCloser // 文件内容读取器，需要在使用后关闭
	Size     int64
	MimeType string
}

// ErrObjectNotFound 对象不存在
var ErrObjectNotFound = errors.New("storage: object not found")

func NewStorageService(cfg *config.Config) (StorageService, error) {
	switch cfg.Storage.Type {
	case "minio":
		return NewMinIOStorageService(&cfg.MinIO, cfg.Storage.PublicBaseURL)
	case "aliyun_oss":
		return NewAliyunOSSStorageService(&cfg.AliyunOSS, cfg.Storage.PublicBaseURL)
	case "local":
		return NewLocalStorageService(afero.NewOsFs(), cfg.Storage.LocalBasePath, cfg.Storage.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("invalid storage type %q", cfg.Storage.Type)
	}
}

// joinURL 拼接 base/bucket/object, object 的每一段都做路径转义
func joinURL(base, bucketName, objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	base = strings.TrimRight(base, "/")
	if bucketName == "" {
		return base + "/" + strings.Join(segments, "/")
	}
	return base + "/" + url.PathEscape(bucketName) + "/" + strings.Join(segments, "/")
}
