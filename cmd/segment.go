package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strollcast/episode-api/internal/services/script"
)

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment <script-file>",
	Short: "Parse a dialogue script into segments",
	Long: `Parse a dialogue script file and print its ordered segments as JSON.

Speaker lines become spoken segments with citations and stage markup
stripped; section headings become pause segments.

Example:
  episode-api segment scripts/vaswani-2017.md`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	segs, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(segs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode segments: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
