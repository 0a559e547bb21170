package webvtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00.000"},
		{1.5, "00:00:01.500"},
		{61.25, "00:01:01.250"},
		{3661.001, "01:01:01.001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Timestamp(tt.seconds))
	}
}

func TestGenerate(t *testing.T) {
	got := Generate([]Cue{
		{Speaker: "ERIC", Text: "Welcome back.", Start: 0, End: 1.5},
		{Speaker: "MAYA", Text: "Great to be here.", Start: 2.0, End: 3.75},
	})

	expected := "WEBVTT\n" +
		"\n" +
		"1\n" +
		"00:00:00.000 --> 00:00:01.500\n" +
		"<v Eric>Welcome back.\n" +
		"\n" +
		"2\n" +
		"00:00:02.000 --> 00:00:03.750\n" +
		"<v Maya>Great to be here.\n"

	assert.Equal(t, expected, got)
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "WEBVTT\n", Generate(nil))
}
