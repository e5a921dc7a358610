package session

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/models"
)

// Cookie names of the session bundle. The legacy frontend reads the
// plaintext ones; the token is the trust root.
const (
	CookieToken   = "session_token"
	CookieUserID  = "user_id"
	CookieName    = "user_name"
	CookieEmail   = "user_email"
	CookieType    = "user_type"
	CookieIsAdmin = "is_admin"
)

// MaxAge is the bundle lifetime: 7 days.
const MaxAge = 7 * 24 * time.Hour

var secret = []byte(getSessionSecret())

func getSessionSecret() string {
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// Identity is the caller reconstructed from the cookie bundle.
type Identity struct {
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"` // "normal" or "partner"
	IsAdmin  bool   `json:"isAdmin"`
}

type sessionClaims struct {
	UserID   uint   `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"utype"`
	IsAdmin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// GenerateToken signs the identity into the session token. The plaintext
// cookies carry the same fields for the client; any mismatch between the
// two invalidates the session.
func GenerateToken(ident Identity) (string, error) {
	claims := sessionClaims{
		UserID:   ident.UserID,
		Name:     ident.Name,
		Email:    ident.Email,
		UserType: ident.UserType,
		IsAdmin:  ident.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(MaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Issue writes the six session cookies: httpOnly, secure, SameSite=None,
// 7-day max age. The is_admin cookie is written only for admins.
func Issue(c *gin.Context, ident Identity) error {
	token, err := GenerateToken(ident)
	if err != nil {
		return err
	}
	maxAge := int(MaxAge.Seconds())
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieToken, token, maxAge, "/", "", true, true)
	c.SetCookie(CookieUserID, strconv.FormatUint(uint64(ident.UserID), 10), maxAge, "/", "", true, true)
	c.SetCookie(CookieName, ident.Name, maxAge, "/", "", true, true)
	c.SetCookie(CookieEmail, ident.Email, maxAge, "/", "", true, true)
	c.SetCookie(CookieType, ident.UserType, maxAge, "/", "", true, true)
	if ident.IsAdmin {
		c.SetCookie(CookieIsAdmin, "true", maxAge, "/", "", true, true)
	}
	return nil
}

// Clear overwrites the whole bundle with empty values and immediate expiry.
func Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	for _, name := range []string{CookieToken, CookieUserID, CookieName, CookieEmail, CookieType, CookieIsAdmin} {
		c.SetCookie(name, "", -1, "/", "", true, true)
	}
}

// FromRequest reconstructs the caller identity. It returns nil unless the
// token and all four plaintext identity cookies are present, the token
// verifies, and the token claims match the plaintext values.
func FromRequest(c *gin.Context) *Identity {
	tokenStr, err := c.Cookie(CookieToken)
	if err != nil || tokenStr == "" {
		return nil
	}
	idStr, err := c.Cookie(CookieUserID)
	if err != nil || idStr == "" {
		return nil
	}
	name, err := c.Cookie(CookieName)
	if err != nil || name == "" {
		return nil
	}
	email, err := c.Cookie(CookieEmail)
	if err != nil || email == "" {
		return nil
	}
	userType, err := c.Cookie(CookieType)
	if err != nil || userType == "" {
		return nil
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil
	}
	if claims.UserID != uint(id) || claims.Name != name || claims.Email != email || claims.UserType != userType {
		return nil
	}
	if userType != models.UserTypeNormal && userType != models.UserTypePartner {
		return nil
	}

	return &Identity{
		UserID:   claims.UserID,
		Name:     claims.Name,
		Email:    claims.Email,
		UserType: claims.UserType,
		IsAdmin:  claims.IsAdmin,
	}
}
