package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Password string `json:"password"`
}

// AdminUser marks a user as an admin. Membership in this table is the only
// admin check the API performs.
type AdminUser struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
