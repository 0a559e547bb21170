// Package script turns a written dialogue script into ordered speaker
// segments ready for synthesis.
package script

import (
	"fmt"
	"iter"
	"os"
	"regexp"
	"strings"
)

// Role identifies who speaks a segment
type Role string

const (
	RoleEric  Role = "ERIC"
	RoleMaya  Role = "MAYA"
	RolePause Role = "PAUSE"
)

// spokenRoles is the fixed set of speaker labels that produce audio.
// Labels outside this set are discarded during parsing.
var spokenRoles = map[Role]bool{
	RoleEric: true,
	RoleMaya: true,
}

// Segment is one spoken utterance or pause unit within an episode script.
// Text is empty for pause segments.
type Segment struct {
	Speaker Role   `json:"speaker"`
	Text    string `json:"text,omitempty"`
}

// IsPause reports whether the segment is a pause marker
func (s Segment) IsPause() bool {
	return s.Speaker == RolePause
}

var (
	speakerRe     = regexp.MustCompile(`^\*\*([A-Z]+):\*\*\s*(.*)$`)
	citationRe    = regexp.MustCompile(`\{\{.*?\}\}`)
	boldBracketRe = regexp.MustCompile(`\*\*\[.*?\]\*\*`)
	bracketRe     = regexp.MustCompile(`\[.*?\]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// sectionHeadingPrefix marks a scripted pause between episode sections
const sectionHeadingPrefix = "## ["

// Parse returns the ordered segments of a raw script. The sequence is
// lazy and restartable: ranging over it twice yields the same segments.
//
// Lines are classified as speaker lines (bold uppercase label followed by
// a colon), section headings (which emit a pause), or ignored prose.
func Parse(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, sectionHeadingPrefix) {
				if !yield(Segment{Speaker: RolePause}) {
					return
				}
				continue
			}

			match := speakerRe.FindStringSubmatch(line)
			if match == nil {
				continue
			}

			role := Role(match[1])
			if !spokenRoles[role] {
				continue
			}

			cleaned := cleanText(match[2])
			if cleaned == "" {
				continue
			}

			if !yield(Segment{Speaker: role, Text: cleaned}) {
				return
			}
		}
	}
}

// ParseFile parses a script file from disk
func ParseFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var segments []Segment
	for segment := range Parse(string(data)) {
		segments = append(segments, segment)
	}
	return segments, nil
}

// Reconstruct renders segments back into script form. Parsing the result
// yields the same segment sequence.
func Reconstruct(segments []Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		if segment.IsPause() {
			b.WriteString(sectionHeadingPrefix + "Section]\n")
			continue
		}
		fmt.Fprintf(&b, "**%s:** %s\n", segment.Speaker, segment.Text)
	}
	return b.String()
}

// cleanText strips markup from a speaker line: citation annotations,
// bracketed stage directions, bold/italic markers, and whitespace runs.
func cleanText(text string) string {
	text = citationRe.ReplaceAllString(text, "")
	text = boldBracketRe.ReplaceAllString(text, "")
	text = bracketRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
