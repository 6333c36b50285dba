package model

import "time"

// ロール名はRoleSeederが起動時に投入する
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

type Role struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"type:varchar(50);not null;uniqueIndex" json:"roleName"`
}

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"type:varchar(255);not null" json:"fullName"`
	Phone    string `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	// bcryptハッシュ（Customerは未設定でも可）
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	RoleID    *int64    `gorm:"index" json:"roleId"`
	Role      *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
