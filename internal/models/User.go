package models

import "time"

const (
	UserTypeNormal  = "normal"
	UserTypePartner = "partner"
)

// User is a normal end-user account. Created at sign-up; admin promotion
// happens out of band, accounts are never deleted in-app.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	UserType  string    `json:"userType"` // always "normal"
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
