package ranobe_test

import (
	"testing"

	"github.com/avdeyev/ranobe-hub/internal/comment"
	"github.com/avdeyev/ranobe-hub/internal/ranobe"
	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	dbPath := t.TempDir() + "/test.db"
	require.NoError(t, database.InitDatabase(dbPath))
	t.Cleanup(func() { database.Close() })

	_, err := database.DB.Exec(
		`INSERT INTO users (username, email, password_hash) VALUES ('author', 'author@example.com', 'x')`)
	require.NoError(t, err)
}

func createRanobe(t *testing.T) int64 {
	t.Helper()
	id, err := ranobe.CreateRanobe(models.RanobeForm{Title: "Test Novel"}, 1)
	require.NoError(t, err)
	return id
}

func TestCreateVolumeNumbering(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)

	v1, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)
	require.Equal(t, 1, v1.VolumeNumber)

	v2, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)
	require.Equal(t, 2, v2.VolumeNumber)

	// Numbering is per novel, not global.
	otherID := createRanobe(t)
	other, err := ranobe.CreateVolume(otherID)
	require.NoError(t, err)
	require.Equal(t, 1, other.VolumeNumber)
}

func TestNextChapterNumber(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)
	v, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)

	next, err := ranobe.NextChapterNumber(v.ID)
	require.NoError(t, err)
	require.Equal(t, 1, next)

	_, err = ranobe.CreateChapter(models.ChapterForm{Title: "One", Content: "...", ChapterNumber: 1}, v.ID)
	require.NoError(t, err)
	_, err = ranobe.CreateChapter(models.ChapterForm{Title: "Seven", Content: "...", ChapterNumber: 7}, v.ID)
	require.NoError(t, err)

	next, err = ranobe.NextChapterNumber(v.ID)
	require.NoError(t, err)
	require.Equal(t, 8, next)
}

func TestEnsureVolumeCreatesFirst(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)

	v, err := ranobe.EnsureVolume(ranobeID)
	require.NoError(t, err)
	require.Equal(t, 1, v.VolumeNumber)

	// A second call reuses the volume instead of stacking new ones.
	again, err := ranobe.EnsureVolume(ranobeID)
	require.NoError(t, err)
	require.Equal(t, v.ID, again.ID)
}

func TestPrevNextChapterNavigation(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)
	v, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)

	for _, n := range []int{1, 3, 5} {
		_, err := ranobe.CreateChapter(models.ChapterForm{Title: "Ch", Content: "...", ChapterNumber: n}, v.ID)
		require.NoError(t, err)
	}

	prev, err := ranobe.PrevChapter(v.ID, 3)
	require.NoError(t, err)
	require.NotNil(t, prev)
	require.Equal(t, 1, prev.ChapterNumber)

	next, err := ranobe.NextChapter(v.ID, 3)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Equal(t, 5, next.ChapterNumber)

	prev, err = ranobe.PrevChapter(v.ID, 1)
	require.NoError(t, err)
	require.Nil(t, prev)

	next, err = ranobe.NextChapter(v.ID, 5)
	require.NoError(t, err)
	require.Nil(t, next)
}

func TestDeleteRanobeCascades(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)
	v, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)
	chapterID, err := ranobe.CreateChapter(models.ChapterForm{Title: "Ch", Content: "...", ChapterNumber: 1}, v.ID)
	require.NoError(t, err)
	_, err = comment.Create("nice chapter", 1, chapterID)
	require.NoError(t, err)

	require.NoError(t, ranobe.DeleteRanobe(ranobeID))

	for _, table := range []string{"ranobe", "volumes", "chapters", "comments"} {
		var count int
		require.NoError(t, database.DB.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		require.Zero(t, count, "table %s should be empty after cascade", table)
	}
}

func TestDeleteChapterCascadesComments(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)
	v, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)
	chapterID, err := ranobe.CreateChapter(models.ChapterForm{Title: "Ch", Content: "...", ChapterNumber: 1}, v.ID)
	require.NoError(t, err)
	_, err = comment.Create("gone with the chapter", 1, chapterID)
	require.NoError(t, err)

	require.NoError(t, ranobe.DeleteChapter(chapterID))

	var count int
	require.NoError(t, database.DB.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&count))
	require.Zero(t, count)
}

func TestUpdateRanobeKeepsAuthor(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)

	form := models.RanobeForm{Title: "Renamed", Description: "new text", CoverImage: "/covers/x.jpg"}
	require.NoError(t, ranobe.UpdateRanobe(ranobeID, form))

	r, err := ranobe.GetRanobe(ranobeID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", r.Title)
	require.Equal(t, "new text", r.Description)
	require.Equal(t, "/covers/x.jpg", r.CoverImage)
	require.Equal(t, int64(1), r.AuthorID)
}

func TestChapterOwner(t *testing.T) {
	setupDB(t)
	ranobeID := createRanobe(t)
	v, err := ranobe.CreateVolume(ranobeID)
	require.NoError(t, err)
	chapterID, err := ranobe.CreateChapter(models.ChapterForm{Title: "Ch", Content: "...", ChapterNumber: 1}, v.ID)
	require.NoError(t, err)

	owner, err := ranobe.ChapterOwner(chapterID)
	require.NoError(t, err)
	require.Equal(t, int64(1), owner)

	_, err = ranobe.ChapterOwner(9999)
	require.ErrorIs(t, err, ranobe.ErrNotFound)
}
