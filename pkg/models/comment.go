package models

import "time"

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ChapterID int64     `json:"chapter_id" db:"chapter_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CommentForm struct {
	Content string `form:"content" binding:"required"`
}

// CommentView carries the commenter's display fields alongside the comment.
type CommentView struct {
	Comment
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	CanDelete bool   `json:"-"`
}
