package web

import (
	"net/http"

	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/gin-gonic/gin"
)

// UserKey is where the session middleware parks the resolved user for the
// duration of a request.
const UserKey = "current_user"

func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// HTML renders a page template with the current user and any pending flash
// message merged into the template data.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = CurrentUser(c)
	}
	if _, ok := data["Flash"]; !ok {
		if flash := TakeFlash(c); flash != nil {
			data["Flash"] = flash
		}
	}
	c.HTML(status, name, data)
}

func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "404.html", nil)
	c.Abort()
}

func Forbidden(c *gin.Context) {
	HTML(c, http.StatusForbidden, "403.html", nil)
	c.Abort()
}
