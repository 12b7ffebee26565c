package handlers

import (
	"net/http"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse 当前会话和解析出的角色
type SessionResponse struct {
	Session *models.Session `json:"session"`
	Role    string          `json:"role"`
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱密码登录, 返回会话 token
// @Tags 用户认证
// @Accept json
// @Produce json
// @Param data body LoginRequest true "登录信息"
// @Success 200 {object} xerr.Response{data=SessionResponse} "登录成功"
// @Failure 400 {object} xerr.Response "参数错误"
// @Failure 401 {object} xerr.Response "邮箱或密码错误"
// @Router /api/v1/auth/login [post]
func Login(sessions admin.SessionProvider, roles admin.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Invalid request body")
			return
		}

		session, err := sessions.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			xerr.FromError(c, err)
			return
		}

		xerr.Success(c, http.StatusOK, "Login successful", SessionResponse{
			Session: session,
			Role:    roles.Resolve(c.Request.Context(), session.User.Email),
		})
	}
}

// Logout 注销当前会话
// @Summary 用户注销
// @Tags 用户认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} xerr.Response "注销成功"
// @Failure 401 {object} xerr.Response "未授权"
// @Router /api/v1/auth/logout [post]
func Logout(sessions admin.SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := utils.GetSessionFromContext(c)
		if !ok {
			return
		}
		if err := sessions.SignOut(c.Request.Context(), session.Token); err != nil {
			xerr.FromError(c, err)
			return
		}
		xerr.Success(c, http.StatusOK, "Logout successful", nil)
	}
}

// CurrentSession 返回当前会话
// @Summary 获取当前会话
// @Tags 用户认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} xerr.Response{data=SessionResponse} "当前会话"
// @Failure 401 {object} xerr.Response "未授权"
// @Router /api/v1/auth/session [get]
func CurrentSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := utils.GetSessionFromContext(c)
		if !ok {
			return
		}
		actor, ok := utils.GetActorFromContext(c)
		if !ok {
			return
		}
		// 不回传 token
		out := *session
		out.Token = ""
		xerr.Success(c, http.StatusOK, "Session retrieved successfully", SessionResponse{Session: &out, Role: actor.Role})
	}
}
