package models

import "time"

// SessionUser 会话中的用户身份
type SessionUser struct {
	Email string `json:"email"`
}

// Session 一次登录会话
type Session struct {
	ID        string      `json:"session_id"`
	Token     string      `json:"token"`
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Actor 执行操作的用户, 由认证中间件构造并显式传入各个服务
type Actor struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsPrivileged manager 和 admin 可以查看报表、删除任意文件
func (a Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}
