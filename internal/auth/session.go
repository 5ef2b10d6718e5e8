package auth

import (
	"net/url"
	"time"

	"github.com/avdeyev/ranobe-hub/internal/web"
	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/avdeyev/ranobe-hub/pkg/utils"
	"github.com/gin-gonic/gin"
)

const SessionCookie = "ranobe_session"

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// SessionMiddleware resolves the current user from the session cookie.
// Anything missing, expired, or pointing at a deleted user leaves the
// request anonymous.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := utils.ParseSessionToken(token, secret)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		row := database.DB.QueryRow(
			`SELECT id, username, email, password_hash, avatar, created_at FROM users WHERE id = ?`, userID)
		if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Avatar, &user.CreatedAt); err != nil {
			c.Next()
			return
		}

		c.Set(web.UserKey, &user)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page, preserving
// the originally requested destination.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if web.CurrentUser(c) == nil {
			web.SetFlash(c, "warning", "Please log in to continue")
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(302, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanModify is the single ownership rule: the resource owner and the
// superuser may mutate, nobody else.
func CanModify(ownerID int64, user *models.User) bool {
	if user == nil {
		return false
	}
	return user.ID == ownerID || user.ID == models.SuperuserID
}

func establishSession(c *gin.Context, userID int64, secret string, remember bool) error {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	token, err := utils.GenerateSessionToken(userID, secret, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
	return nil
}

func clearSession(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
