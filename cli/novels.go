package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var novelsCmd = &cobra.Command{
	Use:   "novels",
	Short: "List published novels",
	Long:  `List every novel published on the server, ordered by title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := apiGet("/api/ranobe")
		if err != nil {
			return err
		}

		var novels []struct {
			ID          int64  `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			CoverImage  string `json:"cover_image"`
		}
		if err := json.Unmarshal(body, &novels); err != nil {
			printError("Unexpected server response")
			return err
		}

		if len(novels) == 0 {
			fmt.Println("No novels published yet")
			return nil
		}

		for _, n := range novels {
			fmt.Printf("%4d  %s\n", n.ID, n.Title)
			if n.Description != "" {
				fmt.Printf("      %s\n", n.Description)
			}
		}
		return nil
	},
}

func apiGet(path string) ([]byte, error) {
	resp, err := http.Get(serverURL + path)
	if err != nil {
		printError("Server connection error")
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var errResp map[string]string
		json.Unmarshal(body, &errResp)
		printError(fmt.Sprintf("Request failed: %s", errResp["error"]))
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return body, nil
}
