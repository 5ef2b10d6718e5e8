package api

import (
	"net/http"
	"strconv"

	"github.com/avdeyev/ranobe-hub/internal/ranobe"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/gin-gonic/gin"
)

// Handler serves the public read-only JSON endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListRanobe returns every novel, ordered by title.
func (h *Handler) ListRanobe(c *gin.Context) {
	list, err := ranobe.ListRanobe()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := make([]models.RanobeSummary, 0, len(list))
	for _, r := range list {
		payload = append(payload, models.RanobeSummary{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			CoverImage:  r.CoverImage,
		})
	}
	c.JSON(http.StatusOK, payload)
}

// ListVolumeChapters returns the chapters of a (ranobe, volume_number) pair.
func (h *Handler) ListVolumeChapters(c *gin.Context) {
	ranobeID, volumeNumber, ok := volumeParams(c)
	if !ok {
		return
	}

	volume, err := ranobe.FindVolumeByNumber(ranobeID, volumeNumber)
	if err == ranobe.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volume not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	chapters, err := ranobe.ListChapters(volume.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := make([]models.ChapterSummary, 0, len(chapters))
	for _, ch := range chapters {
		payload = append(payload, models.ChapterSummary{
			ID:            ch.ID,
			Title:         ch.Title,
			ChapterNumber: ch.ChapterNumber,
		})
	}
	c.JSON(http.StatusOK, payload)
}

// GetChapter returns chapter content by global chapter id.
func (h *Handler) GetChapter(c *gin.Context) {
	chapterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	ch, err := ranobe.GetChapter(chapterID)
	if err == ranobe.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A chapter whose parent volume is gone is a data-integrity edge case,
	// reported the same way as a missing volume.
	volume, err := ranobe.GetVolume(ch.VolumeID)
	if err == ranobe.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volume not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chapterPayload(ch, volume))
}

// GetChapterByNumber returns chapter content addressed by
// (ranobe, volume_number, chapter_number). The volume is resolved first, so
// a missing volume reports as such rather than as a missing chapter.
func (h *Handler) GetChapterByNumber(c *gin.Context) {
	ranobeID, volumeNumber, ok := volumeParams(c)
	if !ok {
		return
	}
	chapterNumber, err := strconv.Atoi(c.Param("cn"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	volume, err := ranobe.FindVolumeByNumber(ranobeID, volumeNumber)
	if err == ranobe.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volume not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ch, err := ranobe.FindChapterByNumber(volume.ID, chapterNumber)
	if err == ranobe.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chapterPayload(ch, volume))
}

func chapterPayload(ch *models.Chapter, volume *models.Volume) models.ChapterContent {
	return models.ChapterContent{
		ID:            ch.ID,
		Title:         ch.Title,
		ChapterNumber: ch.ChapterNumber,
		Content:       ch.Content,
		VolumeNumber:  volume.VolumeNumber,
		RanobeID:      volume.RanobeID,
	}
}

func volumeParams(c *gin.Context) (int64, int, bool) {
	ranobeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volume not found"})
		return 0, 0, false
	}
	volumeNumber, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Volume not found"})
		return 0, 0, false
	}
	return ranobeID, volumeNumber, true
}
