package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// SessionCookieName holds the signed JWT for browser sessions.
	SessionCookieName = "session_token"
	// FlashCookieName carries a one-shot banner message across a redirect.
	FlashCookieName = "flash"

	contextUserIDKey = "webUserID"
)

// sessionClaims mirrors the JWT payload issued by the auth service.
type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// SessionGuard redirects to the landing page when no valid session cookie is
// present. It runs before the protected handler is invoked, so no protected
// query is ever issued for a logged-out visitor — there is no one-frame flash
// of authenticated UI.
func SessionGuard(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessionUserID(c, jwtSecret)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// sessionUserID parses and validates the session cookie.
func sessionUserID(c *gin.Context, jwtSecret string) (primitive.ObjectID, error) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil || tokenString == "" {
		return primitive.NilObjectID, errors.New("no session")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !token.Valid || claims.UserID == "" {
		return primitive.NilObjectID, errors.New("invalid session token")
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

// currentUserID returns the guard-verified user ID for this request.
func currentUserID(c *gin.Context) (primitive.ObjectID, error) {
	idRaw, exists := c.Get(contextUserIDKey)
	if !exists {
		return primitive.NilObjectID, errors.New("user ID not found in context")
	}
	id, ok := idRaw.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid user ID type in context")
	}
	return id, nil
}

// setSessionCookie stores the JWT for subsequent page loads.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
}

// clearSessionCookie logs the browser out.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// setFlash queues a one-shot banner message shown on the next page render.
// Mutation failures are surfaced this way instead of being silently dropped.
// The value is escaped because cookie values cannot carry spaces; c.Cookie
// unescapes on read.
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

// takeFlash reads and clears the queued banner message, if any.
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(FlashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookieName, "", -1, "/", "", false, true)
	return message
}
