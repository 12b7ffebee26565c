package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/export"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/mapper"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/activity"
	"github.com/3Eeeecho/go-fileportal/internal/services/report"
	"github.com/gin-gonic/gin"
)

const (
	datasetFiles = "files"
	datasetLogs  = "logs"

	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZIP  = "application/zip"
)

// ReportSummary 报表概览
// @Summary 报表概览
// @Description 文件总数、日志总数以及当前日志页中的上传次数
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param page query int false "日志页码"
// @Success 200 {object} xerr.Response{data=report.Summary} "概览"
// @Failure 403 {object} xerr.Response "权限不足"
// @Router /api/v1/reports/summary [get]
func ReportSummary(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary := reportService.Summary(c.Request.Context(), queryInt(c, "page", 1))
		xerr.Success(c, http.StatusOK, "Summary retrieved successfully", summary)
	}
}

// ReportFiles 分页文件目录
// @Summary 报表文件列表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Success 200 {object} xerr.Response{data=models.Page[models.File]} "文件列表"
// @Failure 403 {object} xerr.Response "权限不足"
// @Router /api/v1/reports/files [get]
func ReportFiles(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := reportService.Files(c.Request.Context(), models.FileFilter{}, queryInt(c, "page", 1))
		xerr.Success(c, http.StatusOK, "Files listed successfully", page)
	}
}

// ReportLogs 分页操作日志
// @Summary 操作日志
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Success 200 {object} xerr.Response{data=models.Page[models.FileLog]} "日志列表"
// @Failure 403 {object} xerr.Response "权限不足"
// @Router /api/v1/reports/logs [get]
func ReportLogs(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := reportService.Logs(c.Request.Context(), queryInt(c, "page", 1))
		xerr.Success(c, http.StatusOK, "Logs listed successfully", page)
	}
}

// SearchLogs 搜索操作日志
// @Summary 搜索操作日志
// @Description 按文件名或用户邮箱搜索, 未启用 Elasticsearch 时按文件名模糊查询
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param q query string true "关键字"
// @Param limit query int false "最多返回条数"
// @Success 200 {object} xerr.Response{data=[]models.FileLog} "搜索结果"
// @Failure 400 {object} xerr.Response "参数错误"
// @Router /api/v1/reports/logs/search [get]
func SearchLogs(recorder activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := strings.TrimSpace(c.Query("q"))
		if keyword == "" {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Query parameter q is required")
			return
		}
		logs, err := recorder.Search(c.Request.Context(), keyword, queryInt(c, "limit", 0))
		if err != nil {
			xerr.FromError(c, err)
			return
		}
		if logs == nil {
			logs = []models.FileLog{}
		}
		xerr.Success(c, http.StatusOK, "Search completed", logs)
	}
}

// WeeklyChart 最近七天的上传统计
// @Summary 周上传图表
// @Description 最近七个自然日 (含今天) 每个用户每天的上传次数
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param tz query string false "IANA 时区, 例如 Asia/Bangkok"
// @Success 200 {object} xerr.Response{data=report.WeeklyChart} "图表数据"
// @Failure 400 {object} xerr.Response "时区无效"
// @Router /api/v1/reports/chart/weekly [get]
func WeeklyChart(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var loc *time.Location
		if tz := c.Query("tz"); tz != "" {
			l, err := time.LoadLocation(tz)
			if err != nil {
				xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Invalid timezone")
				return
			}
			loc = l
		}
		xerr.Success(c, http.StatusOK, "Chart generated successfully", reportService.WeeklyChart(c.Request.Context(), loc))
	}
}

// ExportDataset 导出文件目录或操作日志
// @Summary 导出报表
// @Description 导出当前页 (scope=page) 或全部 (scope=all) 数据为 CSV 或 XLSX
// @Tags 报表
// @Produce octet-stream
// @Security BearerAuth
// @Param dataset path string true "files 或 logs"
// @Param format query string false "csv (默认) 或 xlsx"
// @Param scope query string false "page (默认) 或 all"
// @Param page query int false "页码"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} xerr.Response "参数错误"
// @Failure 404 {object} xerr.Response "没有可导出的数据"
// @Router /api/v1/reports/export/{dataset} [get]
func ExportDataset(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataset := c.Param("dataset")
		if dataset != datasetFiles && dataset != datasetLogs {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "dataset must be files or logs")
			return
		}
		format := c.DefaultQuery("format", "csv")
		if format != "csv" && format != "xlsx" {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "format must be csv or xlsx")
			return
		}

		records, err := loadRecords(c, reportService, dataset, c.DefaultQuery("scope", "page"))
		if err != nil {
			xerr.FromError(c, err)
			return
		}

		var (
			data        []byte
			contentType string
		)
		if format == "xlsx" {
			data, err = export.XLSX(dataset, records)
			contentType = mimeXLSX
		} else {
			data, err = export.CSV(records)
			contentType = mimeCSV
		}
		if err != nil {
			xerr.FromError(c, exportError(err))
			return
		}

		attachment(c, export.Filename(dataset, format, time.Now()), contentType, data)
	}
}

// ExportBundle 打包导出文件目录和操作日志
// @Summary 打包导出
// @Description 把 files 和 logs 的 CSV 打成一个 zip
// @Tags 报表
// @Produce application/zip
// @Security BearerAuth
// @Param scope query string false "page (默认) 或 all"
// @Param page query int false "页码"
// @Success 200 {file} file "zip 文件"
// @Failure 404 {object} xerr.Response "没有可导出的数据"
// @Router /api/v1/reports/export/bundle [get]
func ExportBundle(reportService report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		scope := c.DefaultQuery("scope", "page")

		var entries []export.Entry
		for _, dataset := range []string{datasetFiles, datasetLogs} {
			records, err := loadRecords(c, reportService, dataset, scope)
			if err != nil {
				xerr.FromError(c, err)
				return
			}
			data, err := export.CSV(records)
			if err != nil && !errors.Is(err, export.ErrNoData) {
				xerr.FromError(c, err)
				return
			}
			entries = append(entries, export.Entry{Name: export.Filename(dataset, "csv", now), Data: data})
		}

		data, err := export.Bundle(entries, now)
		if err != nil {
			xerr.FromError(c, exportError(err))
			return
		}
		attachment(c, export.Filename("report", "zip", now), mimeZIP, data)
	}
}

func loadRecords(c *gin.Context, reportService report.Service, dataset, scope string) ([]export.Record, error) {
	ctx := c.Request.Context()
	all := scope == "all"
	page := queryInt(c, "page", 1)

	switch dataset {
	case datasetFiles:
		if all {
			files, err := reportService.AllFiles(ctx)
			return mapper.FilesToRecords(files), err
		}
		return mapper.FilesToRecords(reportService.Files(ctx, models.FileFilter{}, page).Items), nil
	default:
		if all {
			logs, err := reportService.AllLogs(ctx)
			return mapper.FileLogsToRecords(logs), err
		}
		return mapper.FileLogsToRecords(reportService.Logs(ctx, page).Items), nil
	}
}

func exportError(err error) error {
	if errors.Is(err, export.ErrNoData) {
		return xerr.ErrNoData
	}
	return err
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
