package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taalhuis/taalhuis/cmd/lesson/commands"
)

var rootCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Dutch lesson CLI",
	Long:  `Command line interface for running Dutch learning lessons without the web UI.`,
}

func init() {
	// Add commands
	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.PersonasCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
