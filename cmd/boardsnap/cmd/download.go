package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"boardsnap/internal/adapters/terminal"
	"boardsnap/internal/application/commands"
)

var downloadCmd = &cobra.Command{
	Use:   "download <board-url>",
	Short: "Save every file attachment on a board plus a card manifest",
	Long: `Download resolves the board behind the given page URL, saves each file
attachment as <cardShortKey>-<fileName>, and writes a manifest of all cards
sorted by short key to 00-cards.json.

Link attachments are skipped. A failed attachment is logged and skipped;
only board resolution and the card listing abort the run.

Example:
  boardsnap download https://trello.com/b/abCD1234/my-board`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notifier := terminal.NewNotifier()
		notifier.Start("Download", "fetching board, cards and attachments")

		dl := commands.NewDownloadCommand(api, sink, terminal.NewProgressBar(), logger, args[0])
		result, err := dl.Execute(ctx)
		if err != nil {
			notifier.Error("Download failed", err.Error())
			return err
		}

		notifier.Success("Download complete", fmt.Sprintf(
			"%d cards, %d attachments saved, %d failed", result.Cards, result.Saved, result.Failed))

		if copyPath {
			if err := clipboard.WriteAll(result.ManifestPath); err != nil {
				logger.WithError(err).Warn("clipboard copy failed")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
