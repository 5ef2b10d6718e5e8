package ranobe

import (
	"database/sql"
	"fmt"

	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/models"
)

// ErrNotFound marks a missing novel, volume, or chapter.
var ErrNotFound = fmt.Errorf("not found")

func ListRanobe() ([]models.Ranobe, error) {
	rows, err := database.DB.Query(
		`SELECT id, title, COALESCE(description, ''), COALESCE(cover_image, ''), author_id, created_at
		 FROM ranobe ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Ranobe
	for rows.Next() {
		var r models.Ranobe
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.CoverImage, &r.AuthorID, &r.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

func GetRanobe(id int64) (*models.Ranobe, error) {
	var r models.Ranobe
	row := database.DB.QueryRow(
		`SELECT id, title, COALESCE(description, ''), COALESCE(cover_image, ''), author_id, created_at
		 FROM ranobe WHERE id = ?`, id)
	if err := row.Scan(&r.ID, &r.Title, &r.Description, &r.CoverImage, &r.AuthorID, &r.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func CreateRanobe(form models.RanobeForm, authorID int64) (int64, error) {
	res, err := database.DB.Exec(
		`INSERT INTO ranobe (title, description, cover_image, author_id) VALUES (?, ?, ?, ?)`,
		form.Title, form.Description, form.CoverImage, authorID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateRanobe overwrites the mutable fields only; author_id stays put.
func UpdateRanobe(id int64, form models.RanobeForm) error {
	_, err := database.DB.Exec(
		`UPDATE ranobe SET title = ?, description = ?, cover_image = ? WHERE id = ?`,
		form.Title, form.Description, form.CoverImage, id)
	return err
}

func DeleteRanobe(id int64) error {
	_, err := database.DB.Exec(`DELETE FROM ranobe WHERE id = ?`, id)
	return err
}

func ListVolumes(ranobeID int64) ([]models.Volume, error) {
	rows, err := database.DB.Query(
		`SELECT id, volume_number, ranobe_id, COALESCE(title, '') FROM volumes
		 WHERE ranobe_id = ? ORDER BY volume_number`, ranobeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Volume
	for rows.Next() {
		var v models.Volume
		if err := rows.Scan(&v.ID, &v.VolumeNumber, &v.RanobeID, &v.Title); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func GetVolume(id int64) (*models.Volume, error) {
	var v models.Volume
	row := database.DB.QueryRow(
		`SELECT id, volume_number, ranobe_id, COALESCE(title, '') FROM volumes WHERE id = ?`, id)
	if err := row.Scan(&v.ID, &v.VolumeNumber, &v.RanobeID, &v.Title); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// FindVolumeByNumber looks a volume up by its position within a novel.
func FindVolumeByNumber(ranobeID int64, volumeNumber int) (*models.Volume, error) {
	var v models.Volume
	row := database.DB.QueryRow(
		`SELECT id, volume_number, ranobe_id, COALESCE(title, '') FROM volumes
		 WHERE ranobe_id = ? AND volume_number = ?`, ranobeID, volumeNumber)
	if err := row.Scan(&v.ID, &v.VolumeNumber, &v.RanobeID, &v.Title); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// CreateVolume appends a volume numbered one past the novel's current
// highest, starting at 1. The read and the insert share a transaction so a
// failure on either path releases everything.
func CreateVolume(ranobeID int64) (*models.Volume, error) {
	tx, err := database.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow(
		`SELECT COALESCE(MAX(volume_number), 0) + 1 FROM volumes WHERE ranobe_id = ?`, ranobeID).Scan(&next); err != nil {
		return nil, err
	}

	res, err := tx.Exec(
		`INSERT INTO volumes (volume_number, ranobe_id) VALUES (?, ?)`, next, ranobeID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &models.Volume{ID: id, VolumeNumber: next, RanobeID: ranobeID}, nil
}

// LatestVolume returns the highest-numbered volume of a novel, or ErrNotFound.
func LatestVolume(ranobeID int64) (*models.Volume, error) {
	var v models.Volume
	row := database.DB.QueryRow(
		`SELECT id, volume_number, ranobe_id, COALESCE(title, '') FROM volumes
		 WHERE ranobe_id = ? ORDER BY volume_number DESC LIMIT 1`, ranobeID)
	if err := row.Scan(&v.ID, &v.VolumeNumber, &v.RanobeID, &v.Title); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// EnsureVolume returns the target volume for a new chapter: the novel's
// latest volume, auto-creating volume 1 when the novel has none yet.
func EnsureVolume(ranobeID int64) (*models.Volume, error) {
	v, err := LatestVolume(ranobeID)
	if err == nil {
		return v, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	return CreateVolume(ranobeID)
}

func ListChapters(volumeID int64) ([]models.Chapter, error) {
	rows, err := database.DB.Query(
		`SELECT id, title, content, chapter_number, volume_id, created_at FROM chapters
		 WHERE volume_id = ? ORDER BY chapter_number`, volumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Chapter
	for rows.Next() {
		var ch models.Chapter
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.ChapterNumber, &ch.VolumeID, &ch.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, ch)
	}
	return list, rows.Err()
}

func GetChapter(id int64) (*models.Chapter, error) {
	var ch models.Chapter
	row := database.DB.QueryRow(
		`SELECT id, title, content, chapter_number, volume_id, created_at FROM chapters WHERE id = ?`, id)
	if err := row.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.ChapterNumber, &ch.VolumeID, &ch.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func FindChapterByNumber(volumeID int64, chapterNumber int) (*models.Chapter, error) {
	var ch models.Chapter
	row := database.DB.QueryRow(
		`SELECT id, title, content, chapter_number, volume_id, created_at FROM chapters
		 WHERE volume_id = ? AND chapter_number = ?`, volumeID, chapterNumber)
	if err := row.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.ChapterNumber, &ch.VolumeID, &ch.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func CreateChapter(form models.ChapterForm, volumeID int64) (int64, error) {
	res, err := database.DB.Exec(
		`INSERT INTO chapters (title, content, chapter_number, volume_id) VALUES (?, ?, ?, ?)`,
		form.Title, form.Content, form.ChapterNumber, volumeID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func UpdateChapter(id int64, form models.ChapterForm) error {
	_, err := database.DB.Exec(
		`UPDATE chapters SET title = ?, content = ?, chapter_number = ? WHERE id = ?`,
		form.Title, form.Content, form.ChapterNumber, id)
	return err
}

func DeleteChapter(id int64) error {
	_, err := database.DB.Exec(`DELETE FROM chapters WHERE id = ?`, id)
	return err
}

// NextChapterNumber suggests the successor of the volume's highest chapter
// number, or 1 for an empty volume.
func NextChapterNumber(volumeID int64) (int, error) {
	var next int
	err := database.DB.QueryRow(
		`SELECT COALESCE(MAX(chapter_number), 0) + 1 FROM chapters WHERE volume_id = ?`, volumeID).Scan(&next)
	return next, err
}

// PrevChapter returns the chapter with the largest number strictly below the
// given one within the same volume, or nil at the boundary.
func PrevChapter(volumeID int64, chapterNumber int) (*models.Chapter, error) {
	var ch models.Chapter
	row := database.DB.QueryRow(
		`SELECT id, title, content, chapter_number, volume_id, created_at FROM chapters
		 WHERE volume_id = ? AND chapter_number < ?
		 ORDER BY chapter_number DESC LIMIT 1`, volumeID, chapterNumber)
	if err := row.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.ChapterNumber, &ch.VolumeID, &ch.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ch, nil
}

// NextChapter is the mirror of PrevChapter.
func NextChapter(volumeID int64, chapterNumber int) (*models.Chapter, error) {
	var ch models.Chapter
	row := database.DB.QueryRow(
		`SELECT id, title, content, chapter_number, volume_id, created_at FROM chapters
		 WHERE volume_id = ? AND chapter_number > ?
		 ORDER BY chapter_number ASC LIMIT 1`, volumeID, chapterNumber)
	if err := row.Scan(&ch.ID, &ch.Title, &ch.Content, &ch.ChapterNumber, &ch.VolumeID, &ch.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ch, nil
}

// ChapterOwner resolves the author of the novel a chapter belongs to.
func ChapterOwner(chapterID int64) (int64, error) {
	var authorID int64
	err := database.DB.QueryRow(
		`SELECT r.author_id FROM chapters c
		 JOIN volumes v ON v.id = c.volume_id
		 JOIN ranobe r ON r.id = v.ranobe_id
		 WHERE c.id = ?`, chapterID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return authorID, err
}
