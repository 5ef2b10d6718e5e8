package models

import "time"

type Chapter struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	ChapterNumber int       `json:"chapter_number" db:"chapter_number"`
	VolumeID      int64     `json:"volume_id" db:"volume_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type ChapterForm struct {
	Title         string `form:"title" binding:"required"`
	ChapterNumber int    `form:"chapter_number" binding:"required"`
	Content       string `form:"content" binding:"required"`
}

// ChapterSummary is the API chapter-list payload.
type ChapterSummary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ChapterNumber int    `json:"chapter_number"`
}

// ChapterContent is the API chapter-detail payload.
type ChapterContent struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ChapterNumber int    `json:"chapter_number"`
	Content       string `json:"content"`
	VolumeNumber  int    `json:"volume_number"`
	RanobeID      int64  `json:"ranobe_id"`
}
