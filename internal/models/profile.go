package models

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Profile 对应 profiles 表, 每个邮箱一条, 角色是唯一的授权依据
type Profile struct {
	Email string `gorm:"primaryKey;type:varchar(255)" json:"email"`
	Role  string `gorm:"type:varchar(16);not null;default:'employee'" json:"role"`
}

// TableName 指定 GORM 使用的表名
func (Profile) TableName() string {
	return "profiles"
}

// IsValidRole 检查角色名是否合法
func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}
