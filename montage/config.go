package montage

import (
	"fmt"
	"time"
)

// Supported montage image formats. The extension doubles as the format
// selector for both ffmpeg and ImageMagick.
const (
	FormatPNG = "png"
	FormatGIF = "gif"
	FormatJPG = "jpg"
)

// Config carries every knob for a montage run. Construct it, validate it
// once, then treat it as read-only.
type Config struct {
	Thumbnails      int    // frames per montage
	ThumbSize       int    // bounding box in pixels for each frame
	StartSeconds    int    // skip this much of the video before sampling
	Format          string // png, gif or jpg
	OutDir          string // output directory; empty means next to each video
	TempDir         string // working directory; empty means auto-created per run
	BackgroundColor string
	LabelColor      string
	FFmpegOptions   string        // extra args passed through to ffmpeg, whitespace-split
	ToolTimeout     time.Duration // per-subprocess timeout; zero waits forever
	Overwrite       bool
	Recursive       bool
	ShowProgress    bool
}

// DefaultConfig returns the stock configuration: 25 thumbnails at 435px,
// jpg output, sampling from two minutes in, black background, white label.
func DefaultConfig() Config {
	return Config{
		Thumbnails:      25,
		ThumbSize:       435,
		StartSeconds:    120,
		Format:          FormatJPG,
		BackgroundColor: "black",
		LabelColor:      "white",
	}
}

// Validate checks ranges and enum membership up front so that bad values
// surface as a single ConfigError before any video is touched.
func (c Config) Validate() error {
	if c.Thumbnails < 1 {
		return &ConfigError{Field: "thumbnails", Reason: fmt.Sprintf("must be at least 1, got %d", c.Thumbnails)}
	}
	if c.ThumbSize < 1 {
		return &ConfigError{Field: "thumbsize", Reason: fmt.Sprintf("must be at least 1, got %d", c.ThumbSize)}
	}
	if c.StartSeconds < 0 {
		return &ConfigError{Field: "start-seconds", Reason: fmt.Sprintf("must not be negative, got %d", c.StartSeconds)}
	}
	switch c.Format {
	case FormatPNG, FormatGIF, FormatJPG:
	default:
		return &ConfigError{Field: "format", Reason: fmt.Sprintf("unknown format %q (want png, gif or jpg)", c.Format)}
	}
	if c.ToolTimeout < 0 {
		return &ConfigError{Field: "tool-timeout", Reason: "must not be negative"}
	}
	if c.BackgroundColor == "" {
		return &ConfigError{Field: "background-color", Reason: "must not be empty"}
	}
	if c.LabelColor == "" {
		return &ConfigError{Field: "label-color", Reason: "must not be empty"}
	}
	return nil
}
