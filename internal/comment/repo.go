package comment

import (
	"database/sql"
	"fmt"

	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/models"
)

var ErrNotFound = fmt.Errorf("comment not found")

// ListForChapter returns a chapter's comments newest first, with the
// commenter's display fields joined in.
func ListForChapter(chapterID int64) ([]models.CommentView, error) {
	rows, err := database.DB.Query(
		`SELECT c.id, c.content, c.user_id, c.chapter_id, c.created_at, u.username, u.avatar
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.chapter_id = ? ORDER BY c.created_at DESC, c.id DESC`, chapterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.CommentView
	for rows.Next() {
		var cv models.CommentView
		if err := rows.Scan(&cv.ID, &cv.Content, &cv.UserID, &cv.ChapterID, &cv.CreatedAt, &cv.Username, &cv.Avatar); err != nil {
			return nil, err
		}
		list = append(list, cv)
	}
	return list, rows.Err()
}

func Create(content string, userID, chapterID int64) (int64, error) {
	res, err := database.DB.Exec(
		`INSERT INTO comments (content, user_id, chapter_id) VALUES (?, ?, ?)`,
		content, userID, chapterID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func Get(id int64) (*models.Comment, error) {
	var cm models.Comment
	row := database.DB.QueryRow(
		`SELECT id, content, user_id, chapter_id, created_at FROM comments WHERE id = ?`, id)
	if err := row.Scan(&cm.ID, &cm.Content, &cm.UserID, &cm.ChapterID, &cm.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cm, nil
}

func Delete(id int64) error {
	_, err := database.DB.Exec(`DELETE FROM comments WHERE id = ?`, id)
	return err
}
