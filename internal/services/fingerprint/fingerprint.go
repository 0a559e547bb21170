// Package fingerprint derives deterministic cache keys for synthesized
// audio segments from their synthesis inputs.
package fingerprint

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// FormatVersion is the cache key format version. Bumping it invalidates
// every previously cached segment.
const FormatVersion = 2

// modelByProvider maps a synthesis provider to its pinned model. The
// model is part of the key so a model upgrade never serves stale audio.
var modelByProvider = map[string]string{
	"elevenlabs": "eleven_turbo_v2_5",
	"openai":     "tts-1-hd",
}

var nonAlphanumericRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Key computes the cache key for a (text, voice, provider) triple.
//
// The key is a pure function of its inputs: equal triples always yield
// equal keys. The embedded hash is a rolling 32-bit hash chosen for
// partitioning, not collision resistance; the key must never be used
// for integrity verification.
//
// Layout: {version}/{fragment prefix}/{hash}_{provider}_{fragment}.
// The two-character fragment prefix spreads keys evenly across storage
// partitions.
func Key(text, voiceID, provider string) string {
	canonical := canonicalize(text, voiceID, provider)
	fragment := textFragment(text)

	prefix := fragment
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	return fmt.Sprintf("%d/%s/%s_%s_%s", FormatVersion, prefix, rollingHash(canonical), provider, fragment)
}

// canonicalize serializes the synthesis inputs with lexicographically
// sorted keys so field order can never change the hash.
func canonicalize(text, voiceID, provider string) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"model_id": modelByProvider[provider],
		"provider": provider,
		"text":     text,
		"version":  FormatVersion,
		"voice_id": voiceID,
	})
	return string(payload)
}

// rollingHash computes a 32-bit shift-subtract-add hash over the input,
// formatted as 8 lowercase hex digits.
func rollingHash(s string) string {
	var h int64
	for _, r := range s {
		h = (h<<5 - h + int64(r)) & 0xFFFFFFFF
	}

	signed := int32(uint32(h))
	if signed < 0 {
		signed = -signed
	}
	return fmt.Sprintf("%08x", uint32(signed))
}

// textFragment builds a sanitized slice of the text for the key: the
// first 20 plus last 10 characters with non-alphanumerics stripped.
func textFragment(text string) string {
	runes := []rune(text)

	head := 20
	if head > len(runes) {
		head = len(runes)
	}

	tailStart := len(runes) - 10
	if tailStart < 0 {
		tailStart = 0
	}

	fragment := string(runes[:head]) + string(runes[tailStart:])
	return nonAlphanumericRe.ReplaceAllString(fragment, "")
}
