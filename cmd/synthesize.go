package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strollcast/episode-api/internal/services/script"
	"github.com/strollcast/episode-api/internal/services/segmentcache"
	"github.com/strollcast/episode-api/internal/services/segments"
	"github.com/strollcast/episode-api/pkg/config"
)

var synthesizeOutputDir string

// synthesizeCmd represents the synthesize command
var synthesizeCmd = &cobra.Command{
	Use:   "synthesize <script-file>",
	Short: "Resolve a script to audio files and a transcript",
	Long: `Parse a dialogue script, resolve every segment to audio through the
configured TTS backend (serving repeats from the segment cache), and
write numbered MP3 files plus a WebVTT transcript to the output
directory.

Example:
  episode-api synthesize scripts/vaswani-2017.md --output ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runSynthesize,
}

func init() {
	rootCmd.AddCommand(synthesizeCmd)
	synthesizeCmd.Flags().StringVarP(&synthesizeOutputDir, "output", "o", "./out", "output directory")
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	storage, closeStorage, err := buildStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	cacheService := segmentcache.NewService(segmentcache.NewRepository(db.DB), storage, cfg.Cache.Namespace)
	segmentService := buildSegmentService(cfg, cacheService)

	scriptSegments, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}
	if len(scriptSegments) == 0 {
		return fmt.Errorf("script %s contains no segments", args[0])
	}

	if err := os.MkdirAll(synthesizeOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resolved, err := segmentService.ResolveAll(cmd.Context(), scriptSegments)
	if err != nil {
		return err
	}

	cached := 0
	for i, audio := range resolved {
		if audio.Cached {
			cached++
		}
		if len(audio.Audio) == 0 {
			continue // pauses carry no audio
		}
		name := filepath.Join(synthesizeOutputDir, fmt.Sprintf("segment_%04d.mp3", i))
		if err := os.WriteFile(name, audio.Audio, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	transcriptPath := filepath.Join(synthesizeOutputDir, "transcript.vtt")
	if err := os.WriteFile(transcriptPath, []byte(segments.Transcript(scriptSegments, resolved)), 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resolved %d segments (%d from cache) into %s\n",
		len(resolved), cached, synthesizeOutputDir)
	return nil
}
