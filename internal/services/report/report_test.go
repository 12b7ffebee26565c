package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.SetLogger(zap.NewNop())
}

type stubFileRepo struct {
	repositories.FileRepository
	files []models.File
	err   error
}

func (r *stubFileRepo) Count(context.Context, models.FileFilter) (int64, error) {
	return int64(len(r.files)), r.err
}

func (r *stubFileRepo) List(_ context.Context, _ models.FileFilter, _ repositories.Order, offset, limit int) ([]models.File, error) {
	if r.err != nil {
		return nil, r.err
	}
	return window(r.files, offset, limit), nil
}

type stubLogRepo struct {
	repositories.FileLogRepository
	logs  []models.FileLog
	since time.Time
}

func (r *stubLogRepo) Count(context.Context) (int64, error) { return int64(len(r.logs)), nil }

func (r *stubLogRepo) List(_ context.Context, _ repositories.Order, offset, limit int) ([]models.FileLog, error) {
	return window(r.logs, offset, limit), nil
}

func (r *stubLogRepo) ListSince(_ context.Context, since time.Time) ([]models.FileLog, error) {
	r.since = since
	return r.logs, nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func TestLogsPagination(t *testing.T) {
	logs := make([]models.FileLog, 13)
	svc := NewService(&stubFileRepo{}, &stubLogRepo{logs: logs}, 6, nil)

	page := svc.Logs(context.Background(), 3)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(13), page.Total)
	assert.Len(t, page.Items, 1)

	first := svc.Logs(context.Background(), 0)
	assert.Equal(t, 1, first.Page)
	assert.Len(t, first.Items, 6)
}

func TestSummaryCountsUploadsOnPage(t *testing.T) {
	logs := []models.FileLog{
		{Action: models.ActionUpload}, {Action: models.ActionDelete}, {Action: models.ActionUpload},
		{Action: models.ActionUpload}, {Action: models.ActionUpload}, {Action: models.ActionDelete},
		{Action: models.ActionUpload},
	}
	files := make([]models.File, 4)
	svc := NewService(&stubFileRepo{files: files}, &stubLogRepo{logs: logs}, 6, nil)

	s := svc.Summary(context.Background(), 1)
	assert.Equal(t, Summary{TotalFiles: 4, TotalLogs: 7, UploadsOnPage: 4}, s)
	assert.Equal(t, 1, svc.Summary(context.Background(), 2).UploadsOnPage)
}

func TestFilesFallsBackToEmptyOnError(t *testing.T) {
	svc := NewService(&stubFileRepo{err: errors.New("db down")}, &stubLogRepo{}, 6, nil)
	page := svc.Files(context.Background(), models.FileFilter{}, 1)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalPages)

	_, err := svc.AllFiles(context.Background())
	assert.Error(t, err)
}

func TestWeeklyChartQueriesWindowStart(t *testing.T) {
	logRepo := &stubLogRepo{}
	svc := NewService(&stubFileRepo{}, logRepo, 6, time.UTC).(*service)
	svc.now = func() time.Time { return time.Date(2024, 5, 12, 15, 0, 0, 0, time.UTC) }

	chart := svc.WeeklyChart(context.Background(), nil)
	require.Len(t, chart.Dates, 7)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), logRepo.since)
}
