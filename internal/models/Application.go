package models

import (
	"errors"
	"strings"
	"time"
)

// ServiceCategory routes an application to its collection and display label.
type ServiceCategory string

const (
	CategoryLoan             ServiceCategory = "loan"
	CategoryCAService        ServiceCategory = "caService"
	CategoryGovernmentScheme ServiceCategory = "governmentScheme"
)

var ErrUnknownCategory = errors.New("unknown service category")

// ParseServiceCategory maps the wire value (query param or payload field)
// to a known category.
func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch ServiceCategory(strings.TrimSpace(s)) {
	case CategoryLoan, CategoryCAService, CategoryGovernmentScheme:
		return ServiceCategory(strings.TrimSpace(s)), nil
	default:
		return "", ErrUnknownCategory
	}
}

// Collection returns the table holding this category's applications.
func (sc ServiceCategory) Collection() string {
	switch sc {
	case CategoryLoan:
		return "loan_applications"
	case CategoryCAService:
		return "ca_service_applications"
	case CategoryGovernmentScheme:
		return "government_scheme_applications"
	}
	return ""
}

// Label is the human-readable category name used on dashboards.
func (sc ServiceCategory) Label() string {
	switch sc {
	case CategoryLoan:
		return "Loan"
	case CategoryCAService:
		return "CA Service"
	case CategoryGovernmentScheme:
		return "Government Scheme"
	}
	return string(sc)
}

// Categories lists every service category, in dashboard display order.
func Categories() []ServiceCategory {
	return []ServiceCategory{CategoryLoan, CategoryCAService, CategoryGovernmentScheme}
}

// ApplicationStatus is the closed status set. Writes go through
// CanTransitionTo; free-text statuses are never stored.
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "submitted"
	StatusInReview  ApplicationStatus = "in review"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
)

var ErrUnknownStatus = errors.New("unknown application status")

// ParseStatus accepts any casing of the four display statuses.
func ParseStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusSubmitted:
		return StatusSubmitted, nil
	case StatusInReview:
		return StatusInReview, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrUnknownStatus
	}
}

// CanTransitionTo enforces the linear progression
// submitted -> in review -> approved|rejected. Approved and rejected are
// terminal; submitted may be decided directly without a review step.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case StatusSubmitted:
		return next == StatusInReview || next == StatusApproved || next == StatusRejected
	case StatusInReview:
		return next == StatusApproved || next == StatusRejected
	default:
		return false
	}
}

// ApplicantDetails identifies the person the application is for.
type ApplicantDetails struct {
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// SubmittedBy identifies the session that submitted the application; for
// partner submissions this differs from the applicant.
type SubmittedBy struct {
	UserID    uint   `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserType  string `json:"userType"` // "normal" or "partner"
}

// Application is one submitted loan / CA-service / government-scheme
// request. The three collections share this shape; PartnerID is set iff
// SubmittedBy.UserType is "partner".
type Application struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	ApplicantDetails ApplicantDetails  `gorm:"embedded;embeddedPrefix:applicant_" json:"applicantDetails"`
	SubmittedBy      SubmittedBy       `gorm:"embedded;embeddedPrefix:submitted_by_" json:"submittedBy"`
	PartnerID        *uint             `json:"partnerId,omitempty"`
	ApplicationType  string            `json:"applicationType"`
	ServiceCategory  ServiceCategory   `json:"serviceCategory"`
	FormData         FormData          `gorm:"type:jsonb" json:"formData"`
	Status           ApplicationStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// One type per collection so AutoMigrate creates all three tables.

type LoanApplication struct{ Application }

func (LoanApplication) TableName() string { return CategoryLoan.Collection() }

type CAServiceApplication struct{ Application }

func (CAServiceApplication) TableName() string { return CategoryCAService.Collection() }

type GovernmentSchemeApplication struct{ Application }

func (GovernmentSchemeApplication) TableName() string {
	return CategoryGovernmentScheme.Collection()
}
