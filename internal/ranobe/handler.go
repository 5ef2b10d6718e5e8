package ranobe

import (
	"net/http"
	"strconv"

	"github.com/avdeyev/ranobe-hub/internal/auth"
	"github.com/avdeyev/ranobe-hub/internal/comment"
	"github.com/avdeyev/ranobe-hub/internal/web"
	"github.com/avdeyev/ranobe-hub/pkg/logger"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	log *logger.Logger
}

func NewHandler() *Handler {
	return &Handler{log: logger.GetLogger().WithContext("component", "ranobe")}
}

// Index renders the novel list ordered by title.
func (h *Handler) Index(c *gin.Context) {
	list, err := ListRanobe()
	if err != nil {
		h.log.Error("list_ranobe_failed", "error", err.Error())
	}
	web.HTML(c, http.StatusOK, "index.html", gin.H{"RanobeList": list})
}

func (h *Handler) View(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(id)
	if err != nil {
		web.NotFound(c)
		return
	}

	volumes, err := ListVolumes(id)
	if err != nil {
		h.log.Error("list_volumes_failed", "error", err.Error())
	}

	web.HTML(c, http.StatusOK, "ranobe.html", gin.H{
		"Ranobe":  r,
		"Volumes": volumes,
		"CanEdit": auth.CanModify(r.AuthorID, web.CurrentUser(c)),
	})
}

func (h *Handler) AddPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "add_ranobe.html", gin.H{"Title": "New ranobe"})
}

func (h *Handler) Add(c *gin.Context) {
	var form models.RanobeForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "add_ranobe.html", gin.H{"Title": "New ranobe", "Error": "Title is required"})
		return
	}

	user := web.CurrentUser(c)
	if _, err := CreateRanobe(form, user.ID); err != nil {
		h.log.Error("create_ranobe_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) EditPage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(id)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	web.HTML(c, http.StatusOK, "add_ranobe.html", gin.H{
		"Title": "Edit ranobe",
		"Form":  models.RanobeForm{Title: r.Title, Description: r.Description, CoverImage: r.CoverImage},
	})
}

func (h *Handler) Edit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(id)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	var form models.RanobeForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "add_ranobe.html", gin.H{"Title": "Edit ranobe", "Error": "Title is required", "Form": form})
		return
	}

	if err := UpdateRanobe(id, form); err != nil {
		h.log.Error("update_ranobe_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/ranobe/"+strconv.FormatInt(id, 10))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(id)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	if err := DeleteRanobe(id); err != nil {
		h.log.Error("delete_ranobe_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) NewVolume(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(id)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	if _, err := CreateVolume(id); err != nil {
		h.log.Error("create_volume_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/ranobe/"+strconv.FormatInt(id, 10))
}

func (h *Handler) ViewVolume(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	v, err := GetVolume(id)
	if err != nil {
		web.NotFound(c)
		return
	}

	chapters, err := ListChapters(id)
	if err != nil {
		h.log.Error("list_chapters_failed", "error", err.Error())
	}

	r, _ := GetRanobe(v.RanobeID)
	canEdit := false
	if r != nil {
		canEdit = auth.CanModify(r.AuthorID, web.CurrentUser(c))
	}

	web.HTML(c, http.StatusOK, "volume.html", gin.H{
		"Volume":   v,
		"Ranobe":   r,
		"Chapters": chapters,
		"CanEdit":  canEdit,
	})
}

// AddChapterPage picks the target volume (explicit ?volume_id=, else the
// novel's latest, auto-creating volume 1) and pre-fills the suggested
// chapter number.
func (h *Handler) AddChapterPage(c *gin.Context) {
	ranobeID, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(ranobeID)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	volume, ok := h.targetVolume(c, ranobeID)
	if !ok {
		return
	}

	next, err := NextChapterNumber(volume.ID)
	if err != nil {
		h.log.Error("next_chapter_number_failed", "error", err.Error())
		next = 1
	}

	web.HTML(c, http.StatusOK, "add_chapter.html", gin.H{
		"Ranobe": r,
		"Volume": volume,
		"Form":   models.ChapterForm{ChapterNumber: next},
	})
}

func (h *Handler) AddChapter(c *gin.Context) {
	ranobeID, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	r, err := GetRanobe(ranobeID)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return
	}

	volume, ok := h.targetVolume(c, ranobeID)
	if !ok {
		return
	}

	var form models.ChapterForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "add_chapter.html", gin.H{
			"Ranobe": r,
			"Volume": volume,
			"Form":   form,
			"Error":  "Title, chapter number and content are required",
		})
		return
	}

	if _, err := CreateChapter(form, volume.ID); err != nil {
		h.log.Error("create_chapter_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/volume/"+strconv.FormatInt(volume.ID, 10))
}

func (h *Handler) EditChapterPage(c *gin.Context) {
	ch, r, v, ok := h.chapterForEdit(c)
	if !ok {
		return
	}

	web.HTML(c, http.StatusOK, "add_chapter.html", gin.H{
		"Title":  "Edit chapter",
		"Ranobe": r,
		"Volume": v,
		"Form":   models.ChapterForm{Title: ch.Title, ChapterNumber: ch.ChapterNumber, Content: ch.Content},
	})
}

func (h *Handler) EditChapter(c *gin.Context) {
	ch, r, v, ok := h.chapterForEdit(c)
	if !ok {
		return
	}

	var form models.ChapterForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "add_chapter.html", gin.H{
			"Title":  "Edit chapter",
			"Ranobe": r,
			"Volume": v,
			"Form":   form,
			"Error":  "Title, chapter number and content are required",
		})
		return
	}

	if err := UpdateChapter(ch.ID, form); err != nil {
		h.log.Error("update_chapter_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/chapter/"+strconv.FormatInt(ch.ID, 10))
}

func (h *Handler) DeleteChapter(c *gin.Context) {
	ch, _, _, ok := h.chapterForEdit(c)
	if !ok {
		return
	}

	volumeID := ch.VolumeID
	if err := DeleteChapter(ch.ID); err != nil {
		h.log.Error("delete_chapter_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/volume/"+strconv.FormatInt(volumeID, 10))
}

// ViewChapter renders chapter content with previous/next navigation and the
// chapter's comments, newest first.
func (h *Handler) ViewChapter(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return
	}

	ch, err := GetChapter(id)
	if err != nil {
		web.NotFound(c)
		return
	}

	prev, err := PrevChapter(ch.VolumeID, ch.ChapterNumber)
	if err != nil {
		h.log.Error("prev_chapter_failed", "error", err.Error())
	}
	next, err := NextChapter(ch.VolumeID, ch.ChapterNumber)
	if err != nil {
		h.log.Error("next_chapter_failed", "error", err.Error())
	}

	comments, err := comment.ListForChapter(id)
	if err != nil {
		h.log.Error("list_comments_failed", "error", err.Error())
	}

	user := web.CurrentUser(c)
	for i := range comments {
		comments[i].CanDelete = auth.CanModify(comments[i].UserID, user)
	}
	canEdit := false
	if owner, err := ChapterOwner(id); err == nil {
		canEdit = auth.CanModify(owner, user)
	}

	web.HTML(c, http.StatusOK, "chapter.html", gin.H{
		"Chapter":  ch,
		"Prev":     prev,
		"Next":     next,
		"Comments": comments,
		"CanEdit":  canEdit,
	})
}

// targetVolume resolves the volume a new chapter goes into. An explicit
// volume_id must belong to the novel; without one the latest volume is used,
// created on demand.
func (h *Handler) targetVolume(c *gin.Context, ranobeID int64) (*models.Volume, bool) {
	if raw := c.Query("volume_id"); raw != "" {
		volumeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.NotFound(c)
			return nil, false
		}
		volume, err := GetVolume(volumeID)
		if err != nil || volume.RanobeID != ranobeID {
			web.NotFound(c)
			return nil, false
		}
		return volume, true
	}

	volume, err := EnsureVolume(ranobeID)
	if err != nil {
		h.log.Error("ensure_volume_failed", "error", err.Error())
		web.NotFound(c)
		return nil, false
	}
	return volume, true
}

// chapterForEdit loads a chapter and enforces the ownership rule shared by
// the edit and delete routes.
func (h *Handler) chapterForEdit(c *gin.Context) (*models.Chapter, *models.Ranobe, *models.Volume, bool) {
	id, ok := paramID(c)
	if !ok {
		web.NotFound(c)
		return nil, nil, nil, false
	}

	ch, err := GetChapter(id)
	if err != nil {
		web.Forbidden(c)
		return nil, nil, nil, false
	}

	v, err := GetVolume(ch.VolumeID)
	if err != nil {
		web.Forbidden(c)
		return nil, nil, nil, false
	}

	r, err := GetRanobe(v.RanobeID)
	if err != nil || !auth.CanModify(r.AuthorID, web.CurrentUser(c)) {
		web.Forbidden(c)
		return nil, nil, nil, false
	}

	return ch, r, v, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
