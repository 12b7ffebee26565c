package utils

import (
	"net/http"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/gin-gonic/gin"
)

const (
	ActorKey   = "actor"
	SessionKey = "session"
)

// GetActorFromContext 从 Gin 上下文中获取认证中间件写入的 Actor
// 如果获取失败或类型不正确，会中止请求并返回错误
func GetActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get(ActorKey)
	if !exists {
		xerr.AbortWithError(c, http.StatusUnauthorized, xerr.UnauthorizedCode, "Actor not found in context")
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	if !ok {
		xerr.AbortWithError(c, http.StatusInternalServerError, xerr.InternalServerErrorCode, "Invalid actor type in context")
		return models.Actor{}, false
	}
	return actor, true
}

// GetSessionFromContext 返回当前请求的会话
func GetSessionFromContext(c *gin.Context) (*models.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		xerr.AbortWithError(c, http.StatusUnauthorized, xerr.UnauthorizedCode, "Session not found in context")
		return nil, false
	}
	session, ok := v.(*models.Session)
	if !ok {
		xerr.AbortWithError(c, http.StatusInternalServerError, xerr.InternalServerErrorCode, "Invalid session type in context")
		return nil, false
	}
	return session, true
}
