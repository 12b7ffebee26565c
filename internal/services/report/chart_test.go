package report

import (
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(email string, at time.Time) models.FileLog {
	return models.FileLog{Action: models.ActionUpload, UserEmail: email, FileName: "f", CreatedAt: at}
}

func TestWeeklyUploadsMondayAndWednesday(t *testing.T) {
	loc := time.UTC
	// 2024-05-12 是星期日, 窗口为 05-06 (Mon) .. 05-12 (Sun)
	now := time.Date(2024, 5, 12, 15, 0, 0, 0, loc)
	entries := []models.FileLog{
		upload("alice@x.com", time.Date(2024, 5, 6, 9, 0, 0, 0, loc)),
		upload("alice@x.com", time.Date(2024, 5, 8, 10, 0, 0, 0, loc)),
		upload("alice@x.com", time.Date(2024, 5, 8, 23, 59, 0, 0, loc)),
	}

	chart := WeeklyUploads(entries, now, loc)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, chart.Days)
	assert.Equal(t, "2024-05-06", chart.Dates[0])
	assert.Equal(t, "2024-05-12", chart.Dates[6])
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "alice@x.com", chart.Series[0].Email)
	assert.Equal(t, []int{1, 0, 2, 0, 0, 0, 0}, chart.Series[0].Counts)
}

func TestWeeklyUploadsWindowAndFiltering(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 5, 12, 8, 0, 0, 0, loc)
	entries := []models.FileLog{
		upload("old@x.com", time.Date(2024, 5, 5, 23, 59, 59, 0, loc)), // 窗口之前
		{Action: models.ActionDelete, UserEmail: "del@x.com", CreatedAt: now},
		upload("bob@x.com", time.Date(2024, 5, 12, 0, 0, 0, 0, loc)),
		upload("alice@x.com", time.Date(2024, 5, 6, 0, 0, 0, 0, loc)),
	}

	chart := WeeklyUploads(entries, now, loc)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "alice@x.com", chart.Series[0].Email)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0}, chart.Series[0].Counts)
	assert.Equal(t, "bob@x.com", chart.Series[1].Email)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, chart.Series[1].Counts)
}

func TestWeeklyUploadsUsesLocation(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	// UTC 05-11 20:00 在 +07:00 已经是 05-12
	now := time.Date(2024, 5, 12, 12, 0, 0, 0, bangkok)
	entries := []models.FileLog{upload("alice@x.com", time.Date(2024, 5, 11, 20, 0, 0, 0, time.UTC))}

	chart := WeeklyUploads(entries, now, bangkok)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, 1, chart.Series[0].Counts[6])
}

func TestWeeklyUploadsEmpty(t *testing.T) {
	chart := WeeklyUploads(nil, time.Now(), nil)
	assert.Len(t, chart.Dates, ChartDays)
	assert.Empty(t, chart.Series)
	assert.Equal(t, "UTC", chart.Timezone)
}
