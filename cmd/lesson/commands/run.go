package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taalhuis/taalhuis/agent"
	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/config"
	"github.com/taalhuis/taalhuis/export"
	"github.com/taalhuis/taalhuis/persona"
)

var (
	runInput  string
	runExport bool
	runTitle  string
)

// RunCmd runs one lesson for the given persona and prints it.
var RunCmd = &cobra.Command{
	Use:   "run [persona]",
	Short: "Run a lesson with one of the teaching personas",
	Long: `Run a single lesson. Persona is one of: vocabulary, grammar,
conversation, weekly-plan. With --export the lesson is also pushed to the
configured document service; export failure never discards the lesson.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := persona.Get(persona.Key(args[0]))
		if !ok {
			return fmt.Errorf("unknown persona %q", args[0])
		}

		cfg := config.Load()
		client := ai.NewClient(cfg.OpenAIKey, cfg.Model)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
		defer cancel()

		text, err := agent.New(p, client).Run(ctx, runInput)
		if err != nil {
			return err
		}
		fmt.Println(text)

		if runExport {
			title := runTitle
			if title == "" {
				title = "Dutch lesson - " + p.Name
			}
			docID, err := export.New(cfg.ComposioKey).Export(ctx, title, text)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: export failed: %v\n", err)
				return nil
			}
			fmt.Fprintf(os.Stderr, "Exported as document %s\n", docID)
		}
		return nil
	},
}

func init() {
	RunCmd.Flags().StringVarP(&runInput, "input", "i", "", "topic, practice notes, or progress summary for the lesson")
	RunCmd.Flags().BoolVar(&runExport, "export", false, "export the lesson to the document service")
	RunCmd.Flags().StringVar(&runTitle, "title", "", "document title used when exporting")
}
