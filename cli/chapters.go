package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [ranobe-id] [volume-number]",
	Short: "List chapters of a volume",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("ranobe-id must be a number")
		}
		if _, err := strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("volume-number must be a number")
		}

		body, err := apiGet(fmt.Sprintf("/api/ranobe/%s/volumes/%s/chapters", args[0], args[1]))
		if err != nil {
			return err
		}

		var chapters []struct {
			ID            int64  `json:"id"`
			Title         string `json:"title"`
			ChapterNumber int    `json:"chapter_number"`
		}
		if err := json.Unmarshal(body, &chapters); err != nil {
			printError("Unexpected server response")
			return err
		}

		if len(chapters) == 0 {
			fmt.Println("Volume has no chapters yet")
			return nil
		}

		for _, ch := range chapters {
			fmt.Printf("%4d. %s (id %d)\n", ch.ChapterNumber, ch.Title, ch.ID)
		}
		return nil
	},
}

var readByID int64

var readCmd = &cobra.Command{
	Use:   "read [ranobe-id] [volume-number] [chapter-number]",
	Short: "Print a chapter's content",
	Long:  `Print a chapter addressed either positionally or by global id via --chapter-id.`,
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		switch {
		case readByID > 0:
			path = fmt.Sprintf("/api/chapters/%d", readByID)
		case len(args) == 3:
			path = fmt.Sprintf("/api/ranobe/%s/volumes/%s/chapters/%s", args[0], args[1], args[2])
		default:
			return fmt.Errorf("either --chapter-id or ranobe-id, volume-number and chapter-number are required")
		}

		body, err := apiGet(path)
		if err != nil {
			return err
		}

		var chapter struct {
			Title         string `json:"title"`
			ChapterNumber int    `json:"chapter_number"`
			Content       string `json:"content"`
			VolumeNumber  int    `json:"volume_number"`
		}
		if err := json.Unmarshal(body, &chapter); err != nil {
			printError("Unexpected server response")
			return err
		}

		fmt.Printf("Volume %d, Chapter %d: %s\n\n", chapter.VolumeNumber, chapter.ChapterNumber, chapter.Title)
		fmt.Println(chapter.Content)
		return nil
	},
}

func init() {
	readCmd.Flags().Int64Var(&readByID, "chapter-id", 0, "Global chapter id")
}
