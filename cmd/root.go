package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strollcast/episode-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "episode-api",
	Short: "Episode assembly API server",
	Long: `Episode Assembly API - turns dialogue scripts into finished audio episodes

The pipeline parses two-host dialogue scripts, synthesizes each segment
through a TTS backend, caches segment audio under content fingerprints,
and assembles cached segments into a loudness-normalized MP3 episode.

Commands:
  • serve       Run the HTTP API (assemble, status, health)
  • segment     Parse a script file and print its segments as JSON
  • synthesize  Resolve a script to audio files and a WebVTT transcript
  • version     Print version information`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Configuration loads lazily, only for commands that need it
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "segment") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
