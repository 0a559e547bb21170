package types

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AssembleResponse reports the outcome of an assembly job
type AssembleResponse struct {
	Success         bool    `json:"success"`
	DurationSeconds float64 `json:"duration_seconds,omitempty" example:"1847.3"`
	FileSize        int64   `json:"file_size,omitempty" example:"29556800"`
	Error           string  `json:"error,omitempty"`
}

// DeriveIDResponse carries a derived episode identifier
type DeriveIDResponse struct {
	EpisodeID string `json:"episode_id" example:"vaswani-2017-attention_is_all_you"`
}
