package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesToCSV(t *testing.T) {
	files := []models.File{
		{ID: 1, FileName: `a "quoted" name.txt`, Version: 2, UploadedBy: "a@x.com", URL: "http://h/u/a", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: 2, FileName: "b.txt", Version: 1, UploadedBy: "b@x.com"},
	}
	data, err := export.CSV(FilesToRecords(files))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimPrefix(string(data), "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,filename,version,uploaded_by,url,created_at", lines[0])
	assert.Equal(t, `"1","a ""quoted"" name.txt","2","a@x.com","http://h/u/a","2024-01-02T03:04:05Z"`, lines[1])
	assert.Equal(t, `"2","b.txt","1","b@x.com","",""`, lines[2])
}

func TestFileLogsToRecords(t *testing.T) {
	records := FileLogsToRecords([]models.FileLog{{ID: 5, Action: "delete", FileName: "x", UserEmail: "m@x.com"}})
	require.Len(t, records, 1)
	assert.Equal(t, "action", records[0][1].Name)
	assert.Equal(t, "delete", records[0][1].Value)

	_, err := export.CSV(FileLogsToRecords(nil))
	assert.ErrorIs(t, err, export.ErrNoData)
}
