package search

import (
	"context"
	"errors"

	"github.com/3Eeeecho/go-fileportal/internal/models"
)

// ErrDisabled 未启用搜索服务, 调用方应回退到数据库查询
var ErrDisabled = errors.New("search: indexer disabled")

// Indexer 操作日志的全文检索镜像
type Indexer interface {
	IndexLog(ctx context.Context, entry *models.FileLog) error
	SearchLogs(ctx context.Context, keyword string, limit int) ([]models.FileLog, error)
}

// NopIndexer elasticsearch.enabled=false 时使用
type NopIndexer struct{}

var _ Indexer = NopIndexer{}

func (NopIndexer) IndexLog(context.Context, *models.FileLog) error { return nil }

func (NopIndexer) SearchLogs(context.Context, string, int) ([]models.FileLog, error) {
	return nil, ErrDisabled
}
