package models

import (
	"time"
)

// File 对应 files 表, 每次上传插入一条新记录, 不做原地修改
type File struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName string `gorm:"column:filename;type:varchar(255);not null;index:idx_files_name_owner,priority:1" json:"filename"` // 用户上传时的原始文件名
	Version  uint   `gorm:"not null;default:1" json:"version"`
	// 上传者邮箱, 即文件的所有者
	UploadedBy  string    `gorm:"type:varchar(255);not null;index:idx_files_name_owner,priority:2" json:"uploaded_by"`
	URL         string    `gorm:"column:url;type:varchar(1024);not null" json:"url"`
	StoragePath string    `gorm:"type:varchar(1024);not null;default:''" json:"storage_path"` // 对象在存储中的完整路径
	Size        int64     `gorm:"not null;default:0" json:"size"`
	MimeType    string    `gorm:"type:varchar(128);not null;default:''" json:"mime_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 指定 GORM 使用的表名
func (File) TableName() string {
	return "files"
}

// FileFilter 文件列表的可选过滤条件, 空字段表示不过滤
type FileFilter struct {
	UploadedBy string
	FileName   string
}
