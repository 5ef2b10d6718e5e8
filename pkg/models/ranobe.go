package models

import "time"

type Ranobe struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CoverImage  string    `json:"cover_image" db:"cover_image"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type RanobeForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	CoverImage  string `form:"cover_image"`
}

// RanobeSummary is the API list payload.
type RanobeSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}
