package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/search"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"go.uber.org/zap"
)

const defaultSearchLimit = 50

// Recorder 写操作日志, 并尽力同步到搜索索引
type Recorder interface {
	Record(ctx context.Context, action, fileName, userEmail string) error
	Search(ctx context.Context, keyword string, limit int) ([]models.FileLog, error)
}

type recorder struct {
	logRepo repositories.FileLogRepository
	indexer search.Indexer
}

var _ Recorder = (*recorder)(nil)

func NewRecorder(logRepo repositories.FileLogRepository, indexer search.Indexer) Recorder {
	if indexer == nil {
		indexer = search.NopIndexer{}
	}
	return &recorder{logRepo: logRepo, indexer: indexer}
}

func (r *recorder) Record(ctx context.Context, action, fileName, userEmail string) error {
	entry := &models.FileLog{
		Action:    action,
		FileName:  fileName,
		UserEmail: userEmail,
		CreatedAt: time.Now(),
	}
	if err := r.logRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", xerr.ErrActivityLog, err)
	}

	// 索引失败不影响业务流程
	if err := r.indexer.IndexLog(ctx, entry); err != nil {
		logger.Warn("Record: failed to index file log", zap.Uint64("id", entry.ID), zap.Error(err))
	}
	return nil
}

func (r *recorder) Search(ctx context.Context, keyword string, limit int) ([]models.FileLog, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	logs, err := r.indexer.SearchLogs(ctx, keyword, limit)
	if err == nil {
		return logs, nil
	}
	if !errors.Is(err, search.ErrDisabled) {
		logger.Warn("Search: index query failed, falling back to database", zap.String("keyword", keyword), zap.Error(err))
	}

	logs, err = r.logRepo.SearchByFileName(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerr.ErrSearchError, err)
	}
	return logs, nil
}
