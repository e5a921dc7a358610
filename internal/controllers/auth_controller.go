package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/config"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/models"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/session"
)

// User-facing auth messages. Not-found and wrong-password share one message
// so the API cannot be used to enumerate accounts.
const (
	msgInvalidCredentials = "invalid email or password"
	msgEmailTaken         = "email already registered"
	msgPendingApproval    = "your account is pending approval"
)

type userSignupInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type partnerSignupInput struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	MobileNumber  string `json:"mobileNumber" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	BusinessModel string `json:"businessModel" binding:"required,oneof=referral dsa merchant"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupUser registers a normal user and logs them in immediately.
func SignupUser(c *gin.Context) {
	var input userSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	email := normalizeEmail(input.Email)
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": msgEmailTaken})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("user signup: email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not create account"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not process password"})
		return
	}

	user := models.User{
		FullName: input.FullName,
		Email:    email,
		Password: hashed,
		UserType: models.UserTypeNormal,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// Race with a concurrent sign-up on the same email lands here.
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": msgEmailTaken})
			return
		}
		logrus.WithError(err).Error("user signup: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not create account"})
		return
	}

	if err := session.Issue(c, identityForUser(user)); err != nil {
		logrus.WithError(err).Error("user signup: session issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not establish session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// SignupPartner registers a partner agent. The account stays locked until
// an admin approves it, so no session is issued here.
func SignupPartner(c *gin.Context) {
	var input partnerSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	email := normalizeEmail(input.Email)
	var existing models.Partner
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": msgEmailTaken})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("partner signup: email lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not create account"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not process password"})
		return
	}

	partner := models.Partner{
		FullName:      input.FullName,
		Email:         email,
		MobileNumber:  input.MobileNumber,
		Password:      hashed,
		BusinessModel: input.BusinessModel,
		IsApproved:    false,
	}
	if err := config.DB.Create(&partner).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": msgEmailTaken})
			return
		}
		logrus.WithError(err).Error("partner signup: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "account created; you can log in once an administrator approves it",
		"partner": partner,
	})
}

// LoginUser authenticates a normal user and issues the session bundle.
func LoginUser(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", normalizeEmail(body.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgInvalidCredentials})
			return
		}
		logrus.WithError(err).Error("user login: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not log in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgInvalidCredentials})
		return
	}

	if err := session.Issue(c, identityForUser(user)); err != nil {
		logrus.WithError(err).Error("user login: session issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// LoginPartner authenticates a partner. Unapproved partners are rejected
// even with correct credentials.
func LoginPartner(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var partner models.Partner
	if err := config.DB.Where("email = ?", normalizeEmail(body.Email)).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgInvalidCredentials})
			return
		}
		logrus.WithError(err).Error("partner login: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not log in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgInvalidCredentials})
		return
	}

	if !partner.IsApproved {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": msgPendingApproval})
		return
	}

	if err := session.Issue(c, identityForPartner(partner)); err != nil {
		logrus.WithError(err).Error("partner login: session issue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "partner": partner})
}

// Logout clears the session bundle. Always succeeds.
func Logout(c *gin.Context) {
	session.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

// SessionInfo reconstructs the caller identity from the cookie bundle, the
// way pages check who is logged in before rendering.
func SessionInfo(c *gin.Context) {
	ident := session.FromRequest(c)
	if ident == nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": ident})
}

func identityForUser(user models.User) session.Identity {
	return session.Identity{
		UserID:   user.ID,
		Name:     user.FullName,
		Email:    user.Email,
		UserType: models.UserTypeNormal,
		IsAdmin:  user.IsAdmin,
	}
}

func identityForPartner(partner models.Partner) session.Identity {
	return session.Identity{
		UserID:   partner.ID,
		Name:     partner.FullName,
		Email:    partner.Email,
		UserType: models.UserTypePartner,
		IsAdmin:  partner.IsAdmin,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// isUniqueViolation recognizes a duplicate-key insert. lib/pq reports code
// 23505; the pgx path under gorm only exposes the message text.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
