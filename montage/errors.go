package montage

import (
	"fmt"
	"strings"
)

// One error kind per pipeline stage, so the batch driver can report which
// part of a video's processing gave out. All of them unwrap to the
// underlying cause.

// InputError means the command line paths resolved to no usable video
// files. It aborts the whole run since there is nothing to process.
type InputError struct {
	Paths []string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("no video files found in %s", strings.Join(e.Paths, ", "))
}

// ConfigError reports an invalid configuration value. It surfaces at
// construction time for range and enum violations, and per video when the
// start offset is not inside the video's duration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProbeError means ffprobe failed to produce a usable duration for a video.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ThumbnailError means a single frame extraction failed. The whole video is
// abandoned: montages are all-or-nothing.
type ThumbnailError struct {
	Path   string
	Index  int
	Offset float64
	Err    error
}

func (e *ThumbnailError) Error() string {
	return fmt.Sprintf("thumbnail %d at %.2fs of %s: %v", e.Index, e.Offset, e.Path, e.Err)
}

func (e *ThumbnailError) Unwrap() error { return e.Err }

// CompositionError means the montage tool exited non-zero.
type CompositionError struct {
	Path string
	Err  error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose montage for %s: %v", e.Path, e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }

// toolError pairs a subprocess failure with a trimmed slice of its stderr,
// usually the only clue the external tool leaves behind.
func toolError(err error, output []byte) error {
	msg := truncateOutput(string(output))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}

const maxToolOutput = 400

// truncateOutput trims tool output to something that fits on a log line.
func truncateOutput(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxToolOutput {
		s = s[:maxToolOutput] + "..."
	}
	return s
}
