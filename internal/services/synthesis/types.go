// Package synthesis defines the boundary to the external text-to-speech
// provider: the response shape it returns and the duration metadata
// recoverable from it.
package synthesis

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrMissingTimestamps indicates the provider response carried no usable
// word alignment. This is a provider contract violation and is surfaced
// rather than silently approximated.
var ErrMissingTimestamps = errors.New("synthesis response missing word timestamps")

// Alignment carries word-level timing as parallel arrays, all times in
// seconds from the start of the synthesized audio.
type Alignment struct {
	Words          []string  `json:"words"`
	WordStartTimes []float64 `json:"word_start_times_seconds"`
	WordEndTimes   []float64 `json:"word_end_times_seconds"`
}

// Response is the synthesis provider's reply for one segment. Audio
// arrives either inline as base64 or as a URL to fetch.
type Response struct {
	AudioBase64 string     `json:"audio_base64,omitempty"`
	AudioURL    string     `json:"audio_url,omitempty"`
	Alignment   *Alignment `json:"alignment,omitempty"`
}

// DurationFromAlignment returns the audio duration implied by the word
// alignment: the end time of the last word.
func DurationFromAlignment(resp *Response) (float64, error) {
	if resp == nil || resp.Alignment == nil || len(resp.Alignment.WordEndTimes) == 0 {
		return 0, ErrMissingTimestamps
	}

	ends := resp.Alignment.WordEndTimes
	return ends[len(ends)-1], nil
}

// DecodeAudio returns the inline audio bytes of a response.
func (r *Response) DecodeAudio() ([]byte, error) {
	if r.AudioBase64 == "" {
		return nil, errors.New("synthesis response has no inline audio")
	}

	data, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return data, nil
}
