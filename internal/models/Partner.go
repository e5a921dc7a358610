package models

import "time"

// Business models a partner can sign up under.
const (
	BusinessModelReferral = "referral"
	BusinessModelDSA      = "dsa"
	BusinessModelMerchant = "merchant"
)

// Partner is a referral/DSA/merchant agent account that submits applications
// on behalf of clients. Created with IsApproved=false; login is rejected
// until an admin flips the flag.
type Partner struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber  string    `json:"mobileNumber"`
	Password      string    `json:"-"`
	BusinessModel string    `json:"businessModel"` // "referral", "dsa", "merchant"
	IsApproved    bool      `json:"isApproved"`
	IsAdmin       bool      `json:"isAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
}
