package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string  `gorm:"column:email;uniqueIndex;type:varchar(255);not null" json:"email"`
	Password string  `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Name     *string `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	Role     string  `gorm:"column:role;type:varchar(32);not null;default:'user'" json:"role"`
	IsActive bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
