package types

// EpisodeMetadata carries optional ID3 tags for the assembled episode
type EpisodeMetadata struct {
	Title  string `json:"title,omitempty" example:"Attention Is All You Need"`
	Artist string `json:"artist,omitempty" example:"Strollcast"`
	Album  string `json:"album,omitempty" example:"Strollcast Papers"`
	Genre  string `json:"genre,omitempty" example:"Podcast"`
}

// AssembleRequest represents an episode assembly request. EpisodeID is
// optional; it only labels the job in logs and status reporting.
type AssembleRequest struct {
	EpisodeID string           `json:"episode_id" example:"vaswani-2017-attention_is_all_you"`
	Segments  []string         `json:"segments" binding:"required" example:"https://cache.example.com/seg0.mp3"`
	OutputURL string           `json:"output_url" binding:"required" example:"https://bucket.example.com/episodes/out.mp3"`
	Metadata  *EpisodeMetadata `json:"metadata,omitempty"`
}

// DeriveIDRequest represents an episode identifier derivation request
type DeriveIDRequest struct {
	Title   string `json:"title" binding:"required" example:"Attention Is All You Need"`
	Year    int    `json:"year" binding:"required" example:"2017"`
	Authors string `json:"authors" binding:"required" example:"Ashish Vaswani et al."`
}
