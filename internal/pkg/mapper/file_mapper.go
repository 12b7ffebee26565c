package mapper

import (
	"strconv"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/export"
)

// 导出时间统一使用 RFC3339, 零值输出空串
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// 将models.File转换成导出行, 字段顺序即表头顺序
func FileToRecord(file *models.File) export.Record {
	return export.Record{
		{Name: "id", Value: strconv.FormatUint(file.ID, 10)},
		{Name: "filename", Value: file.FileName},
		{Name: "version", Value: strconv.FormatUint(uint64(file.Version), 10)},
		{Name: "uploaded_by", Value: file.UploadedBy},
		{Name: "url", Value: file.URL},
		{Name: "created_at", Value: formatTime(file.CreatedAt)},
	}
}

func FileLogToRecord(entry *models.FileLog) export.Record {
	return export.Record{
		{Name: "id", Value: strconv.FormatUint(entry.ID, 10)},
		{Name: "action", Value: entry.Action},
		{Name: "filename", Value: entry.FileName},
		{Name: "user_email", Value: entry.UserEmail},
		{Name: "created_at", Value: formatTime(entry.CreatedAt)},
	}
}

func FilesToRecords(files []models.File) []export.Record {
	records := make([]export.Record, 0, len(files))
	for i := range files {
		records = append(records, FileToRecord(&files[i]))
	}
	return records
}

func FileLogsToRecords(entries []models.FileLog) []export.Record {
	records := make([]export.Record, 0, len(entries))
	for i := range entries {
		records = append(records, FileLogToRecord(&entries[i]))
	}
	return records
}
