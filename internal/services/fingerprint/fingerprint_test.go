package fingerprint

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsDeterministic(t *testing.T) {
	text := "Welcome back to the show, today we cover attention."

	first := Key(text, "voice-a", "elevenlabs")
	second := Key(text, "voice-a", "elevenlabs")

	assert.Equal(t, first, second)
}

func TestKeyDiffersByInput(t *testing.T) {
	base := Key("hello world, this is a test segment", "voice-a", "elevenlabs")

	tests := []struct {
		name string
		key  string
	}{
		{"different text", Key("goodbye world, this is a test segment", "voice-a", "elevenlabs")},
		{"different voice", Key("hello world, this is a test segment", "voice-b", "elevenlabs")},
		{"different provider", Key("hello world, this is a test segment", "voice-a", "openai")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.key)
		})
	}
}

func TestKeyLayout(t *testing.T) {
	key := Key("The transformer architecture changed everything about NLP.", "gP8LZQ", "elevenlabs")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)

	assert.Equal(t, fmt.Sprintf("%d", FormatVersion), parts[0])
	assert.Len(t, parts[1], 2)

	// hash_provider_fragment
	tail := strings.SplitN(parts[2], "_", 3)
	require.Len(t, tail, 3)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), tail[0])
	assert.Equal(t, "elevenlabs", tail[1])

	// Fragment is sanitized alphanumeric text.
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-zA-Z]+$`), tail[2])
}

func TestKeyPartitionPrefixMatchesFragment(t *testing.T) {
	key := Key("Some spoken line that is long enough to matter here.", "v", "elevenlabs")

	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)

	fragment := parts[2][strings.LastIndex(parts[2], "_")+1:]
	assert.Equal(t, fragment[:2], parts[1])
}

func TestKeyShortText(t *testing.T) {
	// Shorter than the 20+10 fragment window; must not panic and must
	// still produce a stable key.
	key := Key("Hi.", "v", "elevenlabs")
	assert.Equal(t, key, Key("Hi.", "v", "elevenlabs"))
	assert.Contains(t, key, "_elevenlabs_")
}

func TestKeyEmptyText(t *testing.T) {
	key := Key("", "v", "elevenlabs")
	assert.Equal(t, key, Key("", "v", "elevenlabs"))
	assert.True(t, strings.HasPrefix(key, fmt.Sprintf("%d/", FormatVersion)))
}

func TestTextFragment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "long text takes first 20 plus last 10",
			text:     "abcdefghijklmnopqrstuvwxyz0123456789",
			expected: "abcdefghijklmnopqrst0123456789",
		},
		{
			name:     "punctuation stripped",
			text:     "Hello, world! How are you doing today, friend?",
			expected: "HelloworldHowaryfriend",
		},
		{
			name:     "short text overlaps head and tail",
			text:     "Hi there",
			expected: "HithereHithere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textFragment(tt.text))
		})
	}
}
