package explorer

import (
	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"go.uber.org/zap"
)

// CanDelete admin、manager 或文件所有者可以删除
func CanDelete(actor models.Actor, file *models.File) bool {
	if actor.IsPrivileged() {
		return true
	}
	return actor.Email != "" && file.UploadedBy == actor.Email
}

// checkDeletable 权限不足时返回 ErrPermissionDenied
func checkDeletable(actor models.Actor, file *models.File) error {
	if !CanDelete(actor, file) {
		logger.Warn("File access denied",
			zap.String("actor", actor.Email),
			zap.String("role", actor.Role),
			zap.Uint64("fileID", file.ID),
			zap.String("owner", file.UploadedBy))
		return xerr.ErrPermissionDenied
	}
	return nil
}
