package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/config"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/models"
)

// ListAllApplications merges the three collections for the admin
// dashboard, newest first.
func ListAllApplications(c *gin.Context) {
	apps, err := fetchApplications(nil)
	if err != nil {
		logrus.WithError(err).Error("admin: application fan-out failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// ListPendingPartners lists partner accounts awaiting approval.
func ListPendingPartners(c *gin.Context) {
	var partners []models.Partner
	if err := config.DB.Where("is_approved = ?", false).Order("created_at DESC").Find(&partners).Error; err != nil {
		logrus.WithError(err).Error("admin: pending partner listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load pending partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partners": partners})
}

// ApprovePartner unlocks a partner account for login. Approving an already
// approved partner is a no-op.
func ApprovePartner(c *gin.Context) {
	var partner models.Partner
	if err := config.DB.First(&partner, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "partner not found"})
		return
	}

	if !partner.IsApproved {
		if err := config.DB.Model(&partner).Update("is_approved", true).Error; err != nil {
			logrus.WithError(err).WithField("partner_id", partner.ID).Error("admin: partner approval failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not approve partner"})
			return
		}
		partner.IsApproved = true
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "partner": partner})
}

type statusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus moves an application along
// submitted -> in review -> approved|rejected. Anything else is refused.
func UpdateApplicationStatus(c *gin.Context) {
	category, err := models.ParseServiceCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown category"})
		return
	}

	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	next, err := models.ParseStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown status"})
		return
	}

	var app models.Application
	if err := config.DB.Table(category.Collection()).First(&app, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "application not found"})
		return
	}

	if !app.Status.CanTransitionTo(next) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "cannot move application from " + string(app.Status) + " to " + string(next),
		})
		return
	}

	now := time.Now()
	err = config.DB.Table(category.Collection()).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{"status": next, "updated_at": now}).Error
	if err != nil {
		logrus.WithError(err).WithField("application_id", app.ID).Error("admin: status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not update status"})
		return
	}

	app.Status = next
	app.UpdatedAt = now
	app.ServiceCategory = category
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
