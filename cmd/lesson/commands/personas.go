package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taalhuis/taalhuis/persona"
)

// PersonasCmd lists the available teaching personas.
var PersonasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the available teaching personas",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range persona.All() {
			fmt.Printf("%-14s %s\n", p.Key, p.Name)
			fmt.Printf("               input: %s\n", p.InputHint)
		}
	},
}
