package model

import (
	"time"
)

type UserRole string

const (
	RoleCashier        UserRole = "Cashier"
	RoleSalesAssociate UserRole = "Sales Associate"
	RoleStoreManager   UserRole = "Store Manager"
)

// Roles lists the selectable roles, in form display order.
func Roles() []UserRole {
	return []UserRole{RoleCashier, RoleSalesAssociate, RoleStoreManager}
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	MobileNumber string    `gorm:"type:varchar(20);not null" json:"mobile_number"`
	Role         UserRole  `gorm:"type:varchar(50);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
