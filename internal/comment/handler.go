package comment

import (
	"net/http"
	"strconv"

	"github.com/avdeyev/ranobe-hub/internal/auth"
	"github.com/avdeyev/ranobe-hub/internal/web"
	"github.com/avdeyev/ranobe-hub/pkg/logger"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	// Fallback renders the chapter page when a submission cannot be
	// accepted; posting while anonymous is not an error, the page simply
	// comes back without the comment.
	Fallback gin.HandlerFunc
	log      *logger.Logger
}

func NewHandler(fallback gin.HandlerFunc) *Handler {
	return &Handler{
		Fallback: fallback,
		log:      logger.GetLogger().WithContext("component", "comment"),
	}
}

// Post handles comment submission on the chapter page.
func (h *Handler) Post(c *gin.Context) {
	chapterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	user := web.CurrentUser(c)
	var form models.CommentForm
	if user == nil || c.ShouldBind(&form) != nil {
		h.Fallback(c)
		return
	}

	if _, err := Create(form.Content, user.ID, chapterID); err != nil {
		h.log.Error("create_comment_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/chapter/"+strconv.FormatInt(chapterID, 10))
}

// Delete removes a comment; only its owner or the superuser may.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}

	cm, err := Get(id)
	if err != nil || !auth.CanModify(cm.UserID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	chapterID := cm.ChapterID
	if err := Delete(id); err != nil {
		h.log.Error("delete_comment_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/chapter/"+strconv.FormatInt(chapterID, 10))
}
