package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/explorer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListFiles 获取文件列表
// @Summary 文件列表
// @Description 分页列出所有文件, 可按上传者和文件名过滤, 最新的在前
// @Tags 文件
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码, 从 1 开始"
// @Param page_size query int false "每页条数"
// @Param uploaded_by query string false "上传者邮箱"
// @Param filename query string false "文件名关键字"
// @Success 200 {object} xerr.Response{data=models.Page[models.File]} "文件列表"
// @Failure 401 {object} xerr.Response "未授权"
// @Router /api/v1/files [get]
func ListFiles(fileService explorer.FileService, defaultPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetActorFromContext(c); !ok {
			return
		}
		pageSize := queryInt(c, "page_size", defaultPageSize)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
		filter := models.FileFilter{
			UploadedBy: c.Query("uploaded_by"),
			FileName:   c.Query("filename"),
		}

		page := fileService.List(c.Request.Context(), filter, queryInt(c, "page", 1), pageSize)
		xerr.Success(c, http.StatusOK, "Files listed successfully", page)
	}
}

// DownloadFile 下载文件
// @Summary 下载文件
// @Tags 文件
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "文件ID"
// @Success 200 {file} file "文件内容"
// @Failure 400 {object} xerr.Response "参数错误"
// @Failure 404 {object} xerr.Response "文件不存在"
// @Router /api/v1/files/{id}/download [get]
func DownloadFile(fileService explorer.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetActorFromContext(c); !ok {
			return
		}
		fileID, ok := pathID(c)
		if !ok {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Invalid file ID")
			return
		}

		file, obj, err := fileService.Download(c.Request.Context(), fileID)
		if err != nil {
			xerr.FromError(c, err)
			return
		}
		defer obj.Reader.Close()

		contentType := obj.MimeType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(file.FileName)))
		c.Header("Content-Type", contentType)
		if obj.Size >= 0 {
			c.Header("Content-Length", strconv.FormatInt(obj.Size, 10))
		}
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, obj.Reader); err != nil {
			logger.Warn("DownloadFile: stream interrupted", zap.Uint64("fileID", fileID), zap.Error(err))
		}
	}
}

// DeleteFile 删除文件
// @Summary 删除文件
// @Description 所有者、manager 或 admin 可以删除; 同时删除存储对象并记录日志
// @Tags 文件
// @Produce json
// @Security BearerAuth
// @Param id path int true "文件ID"
// @Success 200 {object} xerr.Response "删除成功"
// @Failure 403 {object} xerr.Response "权限不足"
// @Failure 404 {object} xerr.Response "文件不存在"
// @Failure 500 {object} xerr.Response "内部服务器错误"
// @Router /api/v1/files/{id} [delete]
func DeleteFile(fileService explorer.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := utils.GetActorFromContext(c)
		if !ok {
			return
		}
		fileID, ok := pathID(c)
		if !ok {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Invalid file ID")
			return
		}

		if err := fileService.Delete(c.Request.Context(), actor, fileID); err != nil {
			xerr.FromError(c, err)
			return
		}
		xerr.Success(c, http.StatusOK, "File deleted successfully", nil)
	}
}
