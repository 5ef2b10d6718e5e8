package web

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "ranobe_flash"

type Flash struct {
	Category string
	Message  string
}

// SetFlash queues a one-shot message for the next rendered page.
func SetFlash(c *gin.Context, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(flashCookie, value, 300, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}
