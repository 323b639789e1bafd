package models

import "time"

const ApiUserTable = "api_user"

const (
	RoleAdmin     = "ADMIN"
	RoleSuperuser = "SUPERUSER"
	RoleUser      = "USER"
)

// ApiUser 是 API 的登录账号，与 Customer/Employee 分开
type ApiUser struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"size:255;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:'USER'" json:"role"`
	LastSeenAt   *time.Time `gorm:"index" json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (ApiUser) TableName() string { return ApiUserTable }

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSuperuser || r == RoleUser
}
