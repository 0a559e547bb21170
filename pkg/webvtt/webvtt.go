// Package webvtt renders WebVTT transcript documents from timed
// speaker cues.
package webvtt

import (
	"fmt"
	"strings"
)

// Cue is one spoken line with its position on the episode timeline,
// times in seconds.
type Cue struct {
	Speaker string
	Text    string
	Start   float64
	End     float64
}

// Generate renders the cues as a WebVTT document with voice tags.
func Generate(cues []Cue) string {
	lines := []string{"WEBVTT", ""}

	for i, cue := range cues {
		speaker := cue.Speaker
		if speaker != "" {
			speaker = strings.ToUpper(speaker[:1]) + strings.ToLower(speaker[1:])
		}

		lines = append(lines,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s --> %s", Timestamp(cue.Start), Timestamp(cue.End)),
			fmt.Sprintf("<v %s>%s", speaker, cue.Text),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

// Timestamp formats seconds as a VTT timestamp (HH:MM:SS.mmm)
func Timestamp(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
