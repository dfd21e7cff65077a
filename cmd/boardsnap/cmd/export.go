package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"boardsnap/internal/adapters/terminal"
	"boardsnap/internal/application/commands"
)

var exportLink string

var exportCmd = &cobra.Command{
	Use:   "export <board-url>",
	Short: "Write the board's bulk export with attachment content inlined",
	Long: `Export fetches the board's bulk JSON export and inlines every file
attachment's content as base64 before writing <shortLink>-inclAtt.json.

The run is all-or-nothing: if any attachment cannot be fetched, nothing is
written. Link attachments pass through unchanged.

Example:
  boardsnap export https://trello.com/b/abCD1234/my-board`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notifier := terminal.NewNotifier()
		notifier.Start("Export", "fetching bulk export and inlining attachments")

		exp := commands.NewExportCommand(api, sink, terminal.NewProgressBar(), logger, args[0], exportLink)
		result, err := exp.Execute(ctx)
		if err != nil {
			notifier.Error("Export failed", err.Error())
			return err
		}

		notifier.Success("Export complete", fmt.Sprintf(
			"%d cards, %d attachments inlined: %s", result.Cards, result.Inlined, result.Path))

		if copyPath {
			if err := clipboard.WriteAll(result.Path); err != nil {
				logger.WithError(err).Warn("clipboard copy failed")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportLink, "export-link", "", "bulk export URL when already known (used only if it ends in <shortlink>.json)")
}
