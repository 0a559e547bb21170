package ffmpeg

// Tags carries optional ID3 metadata for the output file
type Tags struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	Genre  string `json:"genre"`
}

// ConcatOptions defines the output encoding for a concat job
type ConcatOptions struct {
	LoudnessTarget int     // Integrated loudness target in LUFS
	TruePeak       float64 // True peak ceiling in dBTP
	LoudnessRange  int     // Loudness range in LU
	Bitrate        string  // Output bitrate, e.g. "128k"
	SampleRate     int     // Output sample rate in Hz
	Tags           Tags
}

// DefaultConcatOptions returns the podcast-standard encoding: -16 LUFS
// loudness, 128 kbps MP3 at 44.1 kHz.
func DefaultConcatOptions() ConcatOptions {
	return ConcatOptions{
		LoudnessTarget: -16,
		TruePeak:       -1.5,
		LoudnessRange:  11,
		Bitrate:        "128k",
		SampleRate:     44100,
	}
}
