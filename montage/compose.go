package montage

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"
)

// tileColumns is the montage grid width for n thumbnails: the smallest
// column count whose square grid holds them all.
func tileColumns(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// montageArgs builds the ImageMagick argument vector composing the
// thumbnails, in extraction order, into the final labeled grid.
func montageArgs(cfg Config, label string, thumbnails []string, output string) []string {
	args := []string{
		"-background", cfg.BackgroundColor,
		"-borderwidth", "0",
		"-fill", cfg.LabelColor,
		"-title", label,
		"-geometry", fmt.Sprintf("%dx%d+1+1", cfg.ThumbSize, cfg.ThumbSize),
		"-tile", fmt.Sprintf("%dx", tileColumns(len(thumbnails))),
	}
	args = append(args, thumbnails...)
	return append(args, output)
}

// montageLabel is the title rendered above the grid.
func montageLabel(v *Video) string {
	return fmt.Sprintf("File: %s | Codec: %s | Resolution: %s | Length %s",
		v.Basename, v.Codec, v.Resolution, formatLength(v.Duration))
}

// formatLength renders a duration in seconds as h:mm:ss for the label.
func formatLength(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// composeMontage runs the montage tool over the extracted thumbnails. A
// failed run removes whatever partial output the tool left behind.
func (b *Builder) composeMontage(ctx context.Context, v *Video, thumbnails []string, output string) error {
	args := montageArgs(b.cfg, montageLabel(v), thumbnails, output)
	if _, stderr, err := b.runTool(ctx, "montage", args); err != nil {
		if removeErr := os.Remove(output); removeErr != nil && !os.IsNotExist(removeErr) {
			b.log.Debug().Err(removeErr).Msg("could not remove partial montage")
		}
		return &CompositionError{Path: v.Path, Err: toolError(err, stderr)}
	}
	return nil
}
