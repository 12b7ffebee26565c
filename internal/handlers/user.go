package handlers

import (
	"net/http"

	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/gin-gonic/gin"
)

// GetUserProfile
// @Summary 获取当前用户资料
// @Description 检索已认证用户的邮箱和角色。
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} xerr.Response{data=admin.UserProfile} "用户资料检索成功"
// @Failure 401 {object} xerr.Response "未授权"
// @Failure 404 {object} xerr.Response "用户未找到"
// @Failure 500 {object} xerr.Response "内部服务器错误"
// @Router /api/v1/users/me [get]
func GetUserProfile(userService admin.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := utils.GetActorFromContext(c)
		if !ok {
			return
		}

		profile, err := userService.GetUserProfile(c.Request.Context(), actor)
		if err != nil {
			xerr.FromError(c, err)
			return
		}
		xerr.Success(c, http.StatusOK, "User profile retrieved successfully", profile)
	}
}
