package cli

import (
	"fmt"
	"syscall"

	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	adminDBPath   string
	adminUsername string
	adminEmail    string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Local administration commands",
	Long:  `Commands that operate directly on the server's database file.`,
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	Long:  `Create a user account directly in the database. The first account created gets id 1 and superuser rights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminUsername == "" {
			return fmt.Errorf("username is required (--username)")
		}
		if adminEmail == "" {
			return fmt.Errorf("email is required (--email)")
		}

		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}

		if string(passwordBytes) != string(confirmBytes) {
			printError("Passwords do not match")
			return fmt.Errorf("passwords do not match")
		}

		if err := database.InitDatabase(adminDBPath); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		hash, err := utils.HashPassword(string(passwordBytes))
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		res, err := database.DB.Exec(
			`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
			adminUsername, adminEmail, hash)
		if err != nil {
			printError("Failed to create user (is the email already registered?)")
			return err
		}

		id, _ := res.LastInsertId()
		printSuccess(fmt.Sprintf("Created user %q with id %d", adminUsername, id))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo content",
	Long:  `Insert a demo novel with a volume and a few chapters, owned by user id 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitDatabase(adminDBPath); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		res, err := database.DB.Exec(
			`INSERT INTO ranobe (title, description, author_id) VALUES (?, ?, 1)`,
			"The Wandering Sword", "A demo novel inserted by ranobectl admin seed.")
		if err != nil {
			return fmt.Errorf("failed to insert novel: %w", err)
		}
		ranobeID, _ := res.LastInsertId()

		res, err = database.DB.Exec(
			`INSERT INTO volumes (volume_number, ranobe_id) VALUES (1, ?)`, ranobeID)
		if err != nil {
			return fmt.Errorf("failed to insert volume: %w", err)
		}
		volumeID, _ := res.LastInsertId()

		for i := 1; i <= 3; i++ {
			_, err = database.DB.Exec(
				`INSERT INTO chapters (title, content, chapter_number, volume_id) VALUES (?, ?, ?, ?)`,
				fmt.Sprintf("Chapter %d", i),
				fmt.Sprintf("Demo content of chapter %d.", i),
				i, volumeID)
			if err != nil {
				return fmt.Errorf("failed to insert chapter %d: %w", i, err)
			}
		}

		printSuccess(fmt.Sprintf("Seeded novel %d with volume %d and 3 chapters", ranobeID, volumeID))
		return nil
	},
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminDBPath, "db", "./data/ranobe.db", "Path to the database file")
	createUserCmd.Flags().StringVar(&adminUsername, "username", "", "Username for the new account")
	createUserCmd.Flags().StringVar(&adminEmail, "email", "", "Email for the new account")

	adminCmd.AddCommand(createUserCmd)
	adminCmd.AddCommand(seedCmd)
}
