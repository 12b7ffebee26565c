package handlers

import (
	"net/http"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/explorer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProgressStep struct {
	Stage   explorer.Stage `json:"stage"`
	Percent int            `json:"percent"`
}

type UploadResponse struct {
	File     *models.File   `json:"file"`
	Progress []ProgressStep `json:"progress"`
}

// UploadFile 上传文件, 同名文件自动生成新版本
// @Summary 上传文件
// @Description 上传一个文件; 同一用户重复上传同名文件时版本号递增
// @Tags 文件
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "文件内容"
// @Success 200 {object} xerr.Response{data=UploadResponse} "上传成功"
// @Failure 400 {object} xerr.Response "参数错误"
// @Failure 413 {object} xerr.Response "文件过大"
// @Failure 500 {object} xerr.Response "内部服务器错误"
// @Router /api/v1/files/upload [post]
func UploadFile(uploadService explorer.UploadService, maxUploadMB int64) gin.HandlerFunc {
	maxBytes := maxUploadMB << 20
	return func(c *gin.Context) {
		actor, ok := utils.GetActorFromContext(c)
		if !ok {
			return
		}

		// 1. 解析文件表单
		fileHeader, err := c.FormFile("file")
		if err != nil {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "File not found in form")
			return
		}
		if maxBytes > 0 && fileHeader.Size > maxBytes {
			xerr.FromError(c, xerr.ErrFileTooLarge)
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			xerr.AbortWithError(c, http.StatusInternalServerError, xerr.InternalServerErrorCode, "Failed to open uploaded file")
			return
		}
		defer src.Close()

		// 2. 执行上传流程, 记录进度节点
		var progress []ProgressStep
		file, err := uploadService.Upload(c.Request.Context(), actor, explorer.UploadInput{
			FileName: fileHeader.Filename,
			Size:     fileHeader.Size,
			MimeType: fileHeader.Header.Get("Content-Type"),
			Reader:   src,
		}, func(stage explorer.Stage, percent int) {
			progress = append(progress, ProgressStep{Stage: stage, Percent: percent})
			logger.Debug("upload progress", zap.String("actor", actor.Email), zap.String("stage", string(stage)), zap.Int("percent", percent))
		})
		if err != nil {
			xerr.FromError(c, err)
			return
		}

		xerr.Success(c, http.StatusOK, "File uploaded successfully", UploadResponse{File: file, Progress: progress})
	}
}
