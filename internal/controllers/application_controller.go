package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/config"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/models"
)

type applicationInput struct {
	ApplicationType  string                   `json:"applicationType" binding:"required"`
	FormData         json.RawMessage          `json:"formData" binding:"required"`
	ApplicantDetails *models.ApplicantDetails `json:"applicantDetails"`
}

// SubmitLoanApplication files a new loan application for the caller.
func SubmitLoanApplication(c *gin.Context) {
	submitApplication(c, models.CategoryLoan)
}

// SubmitCAServiceApplication files a new CA-service application.
func SubmitCAServiceApplication(c *gin.Context) {
	submitApplication(c, models.CategoryCAService)
}

// SubmitGovernmentSchemeApplication files a new scheme enrollment.
func SubmitGovernmentSchemeApplication(c *gin.Context) {
	submitApplication(c, models.CategoryGovernmentScheme)
}

func submitApplication(c *gin.Context, category models.ServiceCategory) {
	ident := middleware.CurrentIdentity(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "you must be logged in"})
		return
	}

	var input applicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	form, err := models.DecodeForm(category, input.ApplicationType, input.FormData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Partners submit on behalf of a client; everyone else applies for
	// themselves.
	applicant := models.ApplicantDetails{
		UserID:   ident.UserID,
		FullName: ident.Name,
		Email:    ident.Email,
	}
	if ident.UserType == models.UserTypePartner && input.ApplicantDetails != nil {
		applicant = *input.ApplicantDetails
	}

	now := time.Now()
	app := models.Application{
		ApplicantDetails: applicant,
		SubmittedBy: models.SubmittedBy{
			UserID:    ident.UserID,
			UserName:  ident.Name,
			UserEmail: ident.Email,
			UserType:  ident.UserType,
		},
		ApplicationType: input.ApplicationType,
		ServiceCategory: category,
		FormData:        models.FormData(input.FormData),
		Status:          models.StatusSubmitted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if ident.UserType == models.UserTypePartner {
		partnerID := ident.UserID
		app.PartnerID = &partnerID
	}

	if err := config.DB.Table(category.Collection()).Create(&app).Error; err != nil {
		logrus.WithError(err).WithField("category", category).Error("application submit: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not submit application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "application": app})
}

// GetMyApplications lists everything the caller submitted, across all
// three collections, newest first.
func GetMyApplications(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "you must be logged in"})
		return
	}

	apps, err := fetchApplications(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("submitted_by_user_id = ? AND submitted_by_user_type = ?", ident.UserID, ident.UserType)
	})
	if err != nil {
		logrus.WithError(err).Error("my applications: fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// GetApplication fetches one application by id and category. Only the
// submitter or an admin may read it.
func GetApplication(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "you must be logged in"})
		return
	}

	category, err := models.ParseServiceCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown category"})
		return
	}

	var app models.Application
	if err := config.DB.Table(category.Collection()).First(&app, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "application not found"})
		return
	}
	app.ServiceCategory = category

	if !ident.IsAdmin &&
		(app.SubmittedBy.UserID != ident.UserID || app.SubmittedBy.UserType != ident.UserType) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "you cannot view this application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

// fetchApplications reads the three collections in parallel, tags each row
// with its category, and merges newest-first. scope narrows each query and
// may be nil.
func fetchApplications(scope func(tx *gorm.DB) *gorm.DB) ([]models.Application, error) {
	categories := models.Categories()
	results := make([][]models.Application, len(categories))

	g := new(errgroup.Group)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			var rows []models.Application
			tx := config.DB.Table(cat.Collection())
			if scope != nil {
				tx = scope(tx)
			}
			if err := tx.Find(&rows).Error; err != nil {
				return fmt.Errorf("%s: %w", cat.Collection(), err)
			}
			for j := range rows {
				rows[j].ServiceCategory = cat
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Application
	for _, rows := range results {
		merged = append(merged, rows...)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}
