package montage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// thumbnailPath names the frame grabbed for a video at a given sequence
// index. The name keys on the video's basename plus the index, so videos
// sharing one temp directory cannot collide.
func thumbnailPath(tempDir, basename string, index int, format string) string {
	return filepath.Join(tempDir, fmt.Sprintf("%s_%03d.%s", basename, index, format))
}

// thumbnailArgs builds the ffmpeg argument vector for grabbing a single
// frame. The seek sits before the input for fast seeking; user pass-through
// options go after the built-ins, immediately before the output file.
func thumbnailArgs(video string, offset float64, size int, extra []string, output string) []string {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-ss", formatOffset(offset),
		"-i", video,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease", size, size),
	}
	args = append(args, extra...)
	return append(args, output)
}

// formatOffset renders a seek offset in seconds the way ffmpeg expects it.
func formatOffset(offset float64) string {
	return strconv.FormatFloat(offset, 'f', 2, 64)
}

// extractThumbnail grabs the index-th frame of a video. The returned path
// names the output file even on failure, where it may have been partially
// written, so the caller can still clean it up.
func (b *Builder) extractThumbnail(ctx context.Context, v *Video, index int, offset float64, tempDir string) (string, error) {
	output := thumbnailPath(tempDir, v.Basename, index, b.cfg.Format)
	args := thumbnailArgs(v.Path, offset, b.cfg.ThumbSize, b.passThroughArgs(), output)

	_, stderr, err := b.runTool(ctx, "ffmpeg", args)
	if err != nil {
		return output, &ThumbnailError{Path: v.Path, Index: index, Offset: offset, Err: toolError(err, stderr)}
	}

	// ffmpeg can exit zero without writing anything, e.g. when seeking past
	// the end of a stream.
	fi, statErr := os.Stat(output)
	if statErr != nil || fi.Size() == 0 {
		return output, &ThumbnailError{
			Path:   v.Path,
			Index:  index,
			Offset: offset,
			Err:    fmt.Errorf("no frame written at %ss", formatOffset(offset)),
		}
	}
	return output, nil
}

// passThroughArgs splits the raw --ffmpeg-options string.
func (b *Builder) passThroughArgs() []string {
	return strings.Fields(b.cfg.FFmpegOptions)
}
