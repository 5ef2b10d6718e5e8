package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:     "ranobectl",
	Short:   "RanobeHub command line client",
	Long:    `Browse published novels from a RanobeHub server and run local admin tasks.`,
	Version: "1.0.0",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8080", "RanobeHub server URL")

	rootCmd.AddCommand(novelsCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(adminCmd)
}

func printError(message string) {
	fmt.Fprintf(os.Stderr, "✗ %s\n", message)
}

func printSuccess(message string) {
	fmt.Printf("✓ %s\n", message)
}
