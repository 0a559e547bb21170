package cmd

import (
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/strollcast/episode-api/internal/database"
	"github.com/strollcast/episode-api/internal/services/script"
	"github.com/strollcast/episode-api/internal/services/segmentcache"
	"github.com/strollcast/episode-api/internal/services/segments"
	"github.com/strollcast/episode-api/internal/services/synthesis"
	"github.com/strollcast/episode-api/pkg/config"
)

// openDatabase opens the cache index
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache index: %w", err)
	}
	return db, nil
}

// buildStorage creates the configured segment audio backend. The
// returned cleanup function releases backend connections.
func buildStorage(cfg *config.Config) (segmentcache.StorageBackend, func(), error) {
	switch cfg.Cache.Backend {
	case "nats":
		nc, err := nats.Connect(cfg.Cache.NatsURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.Cache.NatsURL, err)
		}

		js, err := nc.JetStream()
		if err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to open JetStream context: %w", err)
		}

		storage, err := segmentcache.NewNatsStorage(js, cfg.Cache.Bucket)
		if err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to open object store bucket %s: %w", cfg.Cache.Bucket, err)
		}

		return storage, nc.Close, nil

	default:
		storage, err := segmentcache.NewFilesystemStorage(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache directory %s: %w", cfg.Cache.Dir, err)
		}
		return storage, func() {}, nil
	}
}

// buildSegmentService wires the synthesis pipeline over the cache
func buildSegmentService(cfg *config.Config, cache segmentcache.Service) *segments.Service {
	voices := make(map[script.Role]string, len(cfg.Synthesis.Voices))
	for name, voiceID := range cfg.Synthesis.Voices {
		voices[script.Role(strings.ToUpper(name))] = voiceID
	}

	provider := synthesis.NewHTTPProvider(cfg.Synthesis.BaseURL, cfg.Synthesis.Timeout)
	return segments.NewService(cache, provider, cfg.Synthesis.Provider, voices, cfg.Synthesis.PauseDuration.Seconds())
}
