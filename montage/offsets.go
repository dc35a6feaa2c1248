package montage

import "fmt"

// ComputeOffsets returns the n timestamps, in seconds, at which frames are
// grabbed from a video of the given duration. The first offset is exactly
// start, consecutive offsets are (duration-start)/n apart, and the last one
// stays strictly before the end of the video. n == 1 samples only the start
// offset.
func ComputeOffsets(duration, start float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, &ConfigError{Field: "thumbnails", Reason: fmt.Sprintf("must be at least 1, got %d", n)}
	}
	if duration <= start {
		return nil, &ConfigError{
			Field:  "start-seconds",
			Reason: fmt.Sprintf("offset %.0fs is at or past the end of the video (%.2fs)", start, duration),
		}
	}

	step := (duration - start) / float64(n)
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = start + float64(i)*step
	}
	return offsets, nil
}
