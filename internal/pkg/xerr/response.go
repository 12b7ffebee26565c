package xerr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CodeError 结构体用于在服务层传递带有业务码的错误
// 它实现了 error 接口
type CodeError struct {
	Code int   // 业务错误码
	Err  error // 被包裹的底层错误
}

// Error 实现 error 接口
func (e *CodeError) Error() string {
	return e.Err.Error()
}

// Unwrap 返回被包裹的底层错误，支持 errors.Unwrap
func (e *CodeError) Unwrap() error {
	return e.Err
}

// NewCodeError 创建一个 CodeError 实例
func NewCodeError(code int, err error) *CodeError {
	return &CodeError{Code: code, Err: err}
}

// Response 是通用 JSON 响应结构
type Response struct {
	Code    int    `json:"code"`    // 业务状态码
	Message string `json:"message"` // 消息
	Data    any    `json:"data"`    // 响应数据
}

// JSONResponse 发送标准 JSON 响应
func JSONResponse(c *gin.Context, httpStatus int, code int, message string, data any) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success 成功响应
func Success(c *gin.Context, httpStatus int, message string, data any) {
	JSONResponse(c, httpStatus, SuccessCode, message, data)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	JSONResponse(c, httpStatus, code, message, nil)
}

// AbortWithError 终止请求并发送错误响应
func AbortWithError(c *gin.Context, httpStatus int, code int, message string) {
	Error(c, httpStatus, code, message)
	c.Abort() // 终止后续的 HandlerFunc
}

// statusOf 把服务层的哨兵错误映射为 HTTP 状态码和业务码
func statusOf(err error) (int, int) {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return httpStatusForCode(codeErr.Code), codeErr.Code
	}
	switch {
	case errors.Is(err, ErrInvalidParams), errors.Is(err, ErrValidationFailed):
		return http.StatusBadRequest, InvalidParamsCode
	case errors.Is(err, ErrFileNameInvalid):
		return http.StatusBadRequest, FileNameInvalidCode
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, FileTooLargeCode
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, InvalidCredentialsCode
	case errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized, TokenInvalidCode
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, UnauthorizedCode
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden, PermissionDeniedCode
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ForbiddenCode
	case errors.Is(err, ErrFileNotFound):
		return http.StatusNotFound, FileNotFoundCode
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound, UserNotFoundCode
	case errors.Is(err, ErrNoData):
		return http.StatusNotFound, NoDataCode
	case errors.Is(err, ErrEmailAlreadyExists):
		return http.StatusConflict, EmailAlreadyExistsCode
	case errors.Is(err, ErrStorageError):
		return http.StatusInternalServerError, StorageErrorCode
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrActivityLog):
		return http.StatusInternalServerError, DatabaseErrorCode
	case errors.Is(err, ErrSearchError):
		return http.StatusInternalServerError, SearchErrorCode
	default:
		return http.StatusInternalServerError, InternalServerErrorCode
	}
}

func httpStatusForCode(code int) int {
	switch code / 100 {
	case 400:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 403:
		return http.StatusForbidden
	case 404:
		return http.StatusNotFound
	case 409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError 根据错误类型写出错误响应, message 为底层错误信息
func FromError(c *gin.Context, err error) {
	status, code := statusOf(err)
	AbortWithError(c, status, code, err.Error())
}
