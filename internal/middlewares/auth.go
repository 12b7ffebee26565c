package middlewares

import (
	"net/http"
	"strings"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer Token, 把会话和 Actor 写入 Gin Context
// 角色每次请求都重新解析, 查询失败时为 employee
func AuthMiddleware(sessions admin.SessionProvider, roles admin.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从请求头获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			xerr.AbortWithError(c, http.StatusUnauthorized, xerr.UnauthorizedCode, "Authorization header is required")
			return
		}

		// Token 格式通常是 "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			xerr.AbortWithError(c, http.StatusUnauthorized, xerr.UnauthorizedCode, "Invalid Authorization header format")
			return
		}

		// 2. 查询服务端会话
		session, err := sessions.GetCurrentSession(c.Request.Context(), parts[1])
		if err != nil {
			xerr.FromError(c, err)
			return
		}

		// 3. 将会话和 Actor 存储到 Gin Context 中，以便后续 Handler 使用
		actor := models.Actor{
			Email: session.User.Email,
			Role:  roles.Resolve(c.Request.Context(), session.User.Email),
		}
		c.Set(utils.SessionKey, session)
		c.Set(utils.ActorKey, actor)

		c.Next()
	}
}

// RequireRole 只允许指定角色访问, 必须放在 AuthMiddleware 之后
func RequireRole(allowed ...string) gin.HandlerFunc {
	set := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		set[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := utils.GetActorFromContext(c)
		if !ok {
			return
		}
		if !set[actor.Role] {
			xerr.AbortWithError(c, http.StatusForbidden, xerr.ForbiddenCode, xerr.ErrForbidden.Error())
			return
		}
		c.Next()
	}
}
