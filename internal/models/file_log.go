package models

import "time"

const (
	ActionUpload = "upload"
	ActionDelete = "delete"
)

// FileLog 对应 file_logs 表, 只追加不修改
type FileLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"type:varchar(16);not null;index" json:"action"`
	FileName  string    `gorm:"column:filename;type:varchar(255);not null" json:"filename"`
	UserEmail string    `gorm:"type:varchar(255);not null;index" json:"user_email"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 指定 GORM 使用的表名
func (FileLog) TableName() string {
	return "file_logs"
}
