package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"boardsnap/internal/adapters/boardapi"
	"boardsnap/internal/adapters/filesystem"
	"boardsnap/internal/config"
	"boardsnap/internal/logging"
	"boardsnap/internal/ports"
)

var (
	outputDir string
	copyPath  bool

	api    ports.BoardAPI
	sink   ports.Sink
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boardsnap",
	Short: "Snapshot kanban boards with their attachments",
	Long: `boardsnap talks to your kanban service's REST API and captures a board
locally.

"download" saves every file attachment plus a sorted card manifest;
"export" writes the board's bulk JSON export with attachment content
inlined as base64.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		cfg := config.Load()
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		logger = logging.New(cfg.Debug)
		api = boardapi.New(cfg.BaseURL, cfg.APIKey, cfg.APIToken, cfg.HTTPTimeout, logger)
		sink = filesystem.NewSink(cfg.OutputDir)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "directory to write artifacts to (default $BOARDSNAP_OUTPUT_DIR or .)")
	rootCmd.PersistentFlags().BoolVar(&copyPath, "copy-path", false, "copy the written artifact path to the clipboard")
}
