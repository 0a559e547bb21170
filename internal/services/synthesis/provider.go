package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider synthesizes speech for one text segment. Implementations live
// outside this repository; HTTPProvider is the standard transport.
type Provider interface {
	Synthesize(ctx context.Context, text, voiceID string) (*Response, error)
}

// HTTPProvider talks to a synthesis backend over HTTP. The backend takes
// a JSON request and replies with a Response payload.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates an HTTP-backed synthesis provider
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

// Synthesize requests audio for the given text and voice
func (p *HTTPProvider) Synthesize(ctx context.Context, text, voiceID string) (*Response, error) {
	body, err := json.Marshal(synthesizeRequest{Text: text, VoiceID: voiceID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/synthesize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("synthesis backend returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode synthesis response: %w", err)
	}

	return &result, nil
}
