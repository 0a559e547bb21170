// Package segments orchestrates the synthesis pipeline for script
// segments: fingerprint, cache lookup, synthesis on miss, duration
// measurement, and best-effort cache writeback.
package segments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/strollcast/episode-api/internal/services/fingerprint"
	"github.com/strollcast/episode-api/internal/services/script"
	"github.com/strollcast/episode-api/internal/services/segmentcache"
	"github.com/strollcast/episode-api/internal/services/synthesis"
	"github.com/strollcast/episode-api/pkg/mp3"
	"github.com/strollcast/episode-api/pkg/webvtt"
)

// SegmentAudio is the resolved audio for one script segment
type SegmentAudio struct {
	Key      string
	Audio    []byte
	Duration float64
	Cached   bool
}

// Service resolves script segments to audio
type Service struct {
	cache         segmentcache.Service
	provider      synthesis.Provider
	providerName  string
	voices        map[script.Role]string
	pauseDuration float64
	httpClient    *http.Client
}

// NewService creates a new segment resolution service. voices maps each
// spoken role to its provider voice ID; pauseDuration is the length in
// seconds assigned to pause segments.
func NewService(cache segmentcache.Service, provider synthesis.Provider, providerName string, voices map[script.Role]string, pauseDuration float64) *Service {
	return &Service{
		cache:         cache,
		provider:      provider,
		providerName:  providerName,
		voices:        voices,
		pauseDuration: pauseDuration,
		httpClient:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// GetAudio resolves one segment, serving from cache when possible.
// Pause segments resolve to their fixed duration with no audio.
func (s *Service) GetAudio(ctx context.Context, segment script.Segment) (*SegmentAudio, error) {
	if segment.IsPause() {
		return &SegmentAudio{Duration: s.pauseDuration}, nil
	}

	voiceID, ok := s.voices[segment.Speaker]
	if !ok {
		return nil, fmt.Errorf("no voice configured for speaker %s", segment.Speaker)
	}

	key := fingerprint.Key(segment.Text, voiceID, s.providerName)

	if entry, err := s.cache.Get(ctx, key); err == nil && entry != nil {
		return &SegmentAudio{Key: key, Audio: entry.Audio, Duration: entry.Duration, Cached: true}, nil
	}

	resp, err := s.provider.Synthesize(ctx, segment.Text, voiceID)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed for speaker %s: %w", segment.Speaker, err)
	}

	audio, err := s.audioBytes(ctx, resp)
	if err != nil {
		return nil, err
	}

	duration, err := synthesis.DurationFromAlignment(resp)
	if err != nil {
		if !errors.Is(err, synthesis.ErrMissingTimestamps) {
			return nil, err
		}
		// No alignment: measure from the encoded frames instead.
		duration = mp3.Probe(audio)
	}

	// Caching is best effort; a failed writeback must not fail synthesis.
	if err := s.cache.Put(ctx, key, audio, duration); err != nil {
		log.Printf("[WARN] Failed to cache segment %s: %v", key, err)
	}

	return &SegmentAudio{Key: key, Audio: audio, Duration: duration}, nil
}

// ResolveAll resolves every segment in order
func (s *Service) ResolveAll(ctx context.Context, scriptSegments []script.Segment) ([]SegmentAudio, error) {
	resolved := make([]SegmentAudio, 0, len(scriptSegments))
	for i, segment := range scriptSegments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		audio, err := s.GetAudio(ctx, segment)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		resolved = append(resolved, *audio)
	}
	return resolved, nil
}

// audioBytes extracts the synthesized audio, fetching it when the
// provider returned a URL instead of inline bytes.
func (s *Service) audioBytes(ctx context.Context, resp *synthesis.Response) ([]byte, error) {
	if resp.AudioBase64 != "" {
		return resp.DecodeAudio()
	}

	if resp.AudioURL == "" {
		return nil, errors.New("synthesis response carried neither audio nor audio URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resp.AudioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio fetch request: %w", err)
	}

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch synthesized audio: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("audio fetch returned %d: %s", httpResp.StatusCode, string(body))
	}

	return io.ReadAll(httpResp.Body)
}

// Transcript renders a WebVTT transcript for resolved segments. Pause
// segments advance the clock but emit no cue.
func Transcript(scriptSegments []script.Segment, resolved []SegmentAudio) string {
	var cues []webvtt.Cue
	var clock float64

	for i, segment := range scriptSegments {
		if i >= len(resolved) {
			break
		}

		end := clock + resolved[i].Duration
		if !segment.IsPause() {
			cues = append(cues, webvtt.Cue{
				Speaker: string(segment.Speaker),
				Text:    segment.Text,
				Start:   clock,
				End:     end,
			})
		}
		clock = end
	}

	return webvtt.Generate(cues)
}
