// Package mp3 estimates the play duration of MP3 data without decoding it.
//
// Synthesized segment audio arrives as raw bytes with no container
// metadata, so duration is recovered from the frame headers directly.
// The estimate is advisory only; callers must tolerate approximation.
package mp3

import (
	"bytes"
	"io"
	"os"
)

const (
	id3HeaderSize = 10

	// Sync markers live near the start of the stream; scanning the whole
	// file would be wasted work for multi-megabyte episodes.
	maxSyncScan = 64 * 1024

	// Assumed 128 kbps when no valid frame header is found.
	fallbackBytesPerSecond = 16000
)

// bitrateKbps maps the bitrate index nibble to kbps for MPEG-1 Layer III.
// Index 0 is "free" and index 15 is reserved; both are treated as invalid.
var bitrateKbps = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}

// Probe estimates the duration in seconds of the given MP3 bytes.
// Empty input yields 0. Probe never fails: when no plausible frame
// header is found it falls back to a nominal 128 kbps estimate.
func Probe(data []byte) float64 {
	return estimate(data, int64(len(data)))
}

// ProbeFile estimates the duration of an MP3 file on disk. Only the
// leading bytes are read; the remainder contributes via file size.
func ProbeFile(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	headLen := int64(maxSyncScan + id3HeaderSize)
	if info.Size() < headLen {
		headLen = info.Size()
	}

	head := make([]byte, headLen)
	if _, err := io.ReadFull(f, head); err != nil && err != io.ErrUnexpectedEOF {
		return 0, err
	}

	return estimate(head, info.Size()), nil
}

// estimate scans head for the first plausible frame sync and derives the
// duration from the bytes remaining in the full stream of totalSize.
func estimate(head []byte, totalSize int64) float64 {
	if totalSize == 0 {
		return 0
	}

	offset := skipID3(head)

	limit := len(head) - 2
	if limit > offset+maxSyncScan {
		limit = offset + maxSyncScan
	}

	for i := offset; i < limit; i++ {
		if head[i] != 0xFF || head[i+1]&0xF8 != 0xF8 {
			continue
		}

		b := head[i+2]
		bitrate := bitrateKbps[b>>4]
		if bitrate == 0 {
			continue
		}
		// Sample rate index 3 is reserved; such a header is noise, not a frame.
		if (b>>2)&0x03 == 0x03 {
			continue
		}

		remaining := totalSize - int64(i)
		return float64(remaining) * 8 / float64(bitrate*1000)
	}

	return float64(totalSize) / fallbackBytesPerSecond
}

// skipID3 returns the offset past a leading ID3v2 tag, if present.
// The tag size is a 28-bit syncsafe integer: 7 data bits per byte.
func skipID3(data []byte) int {
	if len(data) < id3HeaderSize || !bytes.HasPrefix(data, []byte("ID3")) {
		return 0
	}

	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
	offset := id3HeaderSize + size
	if offset > len(data) {
		return len(data)
	}
	return offset
}
