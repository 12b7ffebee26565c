package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogListSince(t *testing.T) {
	ctx := context.Background()
	repo := NewFileLogRepository(newTestDB(t))
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	for i, at := range []time.Time{now.AddDate(0, 0, -8), now.AddDate(0, 0, -6), now} {
		require.NoError(t, repo.Append(ctx, &models.FileLog{
			Action:    models.ActionUpload,
			FileName:  []string{"old.txt", "mid.txt", "new.txt"}[i],
			UserEmail: "a@x.com",
			CreatedAt: at,
		}))
	}

	logs, err := repo.ListSince(ctx, now.AddDate(0, 0, -6))
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "mid.txt", logs[0].FileName)
	assert.Equal(t, "new.txt", logs[1].FileName)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestFileLogSearchByFileName(t *testing.T) {
	ctx := context.Background()
	repo := NewFileLogRepository(newTestDB(t))
	for _, name := range []string{"q1_report.xlsx", "q1-report.xlsx", "budget.csv"} {
		require.NoError(t, repo.Append(ctx, &models.FileLog{Action: models.ActionUpload, FileName: name, UserEmail: "a@x.com"}))
	}

	logs, err := repo.SearchByFileName(ctx, "report", 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = repo.SearchByFileName(ctx, "q1_", 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "q1_report.xlsx", logs[0].FileName)

	logs, err = repo.SearchByFileName(ctx, "%", 0)
	require.NoError(t, err)
	assert.Empty(t, logs)

	logs, err = repo.SearchByFileName(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
