// Package montage turns video files into contact sheets: a fixed number of
// evenly spaced frames per video, extracted with ffmpeg and tiled into a
// single labeled grid image by ImageMagick.
package montage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Builder drives the montage pipeline for a batch of videos. It holds the
// validated configuration, the logger and the subprocess seam, and no
// mutable state of its own, so one Builder serves a whole run.
type Builder struct {
	cfg    Config
	log    zerolog.Logger
	runner commandRunner
}

// NewBuilder validates the configuration and returns a ready Builder.
func NewBuilder(cfg Config, log zerolog.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, log: log, runner: execRunner{}}, nil
}

// Stats sums up a run for the exit code and the closing summary.
type Stats struct {
	Total   int
	Created int
	Skipped int
	Failed  int
}

// ProcessVideos resolves the given paths and builds one montage per video.
// Failures are isolated: a broken video is logged, counted, and the batch
// moves on. Only an empty resolved set aborts the run, with an InputError.
func (b *Builder) ProcessVideos(ctx context.Context, paths []string) (Stats, error) {
	var stats Stats

	videos, err := FindVideoFiles(paths, b.cfg.Recursive)
	if err != nil {
		return stats, err
	}
	if len(videos) == 0 {
		return stats, &InputError{Paths: paths}
	}
	stats.Total = len(videos)

	if b.cfg.OutDir != "" {
		if err := os.MkdirAll(b.cfg.OutDir, 0o755); err != nil {
			return stats, fmt.Errorf("create output directory: %w", err)
		}
	}

	tempDir := b.cfg.TempDir
	if tempDir == "" {
		tempDir, err = os.MkdirTemp("", "video-montage-")
		if err != nil {
			return stats, fmt.Errorf("create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)
	} else if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return stats, fmt.Errorf("create temp directory: %w", err)
	}

	b.log.Info().Int("videos", stats.Total).Str("tempdir", tempDir).Msg("starting batch")

	for _, path := range videos {
		if ctx.Err() != nil {
			b.log.Warn().Msg("interrupted, stopping batch")
			break
		}

		skipped, err := b.processVideo(ctx, path, tempDir)
		switch {
		case err != nil:
			stats.Failed++
			b.log.Error().Err(err).Str("video", path).Msg("montage failed")
		case skipped:
			stats.Skipped++
		default:
			stats.Created++
		}
	}

	b.log.Info().
		Int("created", stats.Created).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("batch done")
	return stats, nil
}

// processVideo builds the montage for a single file: probe, offsets,
// extraction, composition. The skipped flag marks an existing output left
// alone because overwrite is off. Extracted thumbnails are removed on every
// return path.
func (b *Builder) processVideo(ctx context.Context, path, tempDir string) (skipped bool, err error) {
	output := b.outputPath(path)
	if _, statErr := os.Stat(output); statErr == nil {
		if !b.cfg.Overwrite {
			b.log.Warn().Str("montage", output).Msg("montage exists, skipping (use --overwrite to replace)")
			return true, nil
		}
		// A stale montage must not survive a failed rebuild.
		if removeErr := os.Remove(output); removeErr != nil {
			return false, fmt.Errorf("remove existing montage %s: %w", output, removeErr)
		}
	}

	video, err := b.probeVideo(ctx, path)
	if err != nil {
		return false, err
	}

	offsets, err := ComputeOffsets(video.Duration, float64(b.cfg.StartSeconds), b.cfg.Thumbnails)
	if err != nil {
		return false, err
	}

	b.log.Info().
		Str("video", video.Basename).
		Float64("duration", video.Duration).
		Int("thumbnails", len(offsets)).
		Msg("creating montage")

	progress := b.newStageProgress(video, len(offsets)+1)
	defer progress.finish()

	var thumbnails []string
	defer func() {
		for _, t := range thumbnails {
			if removeErr := os.Remove(t); removeErr != nil && !os.IsNotExist(removeErr) {
				b.log.Debug().Err(removeErr).Str("thumbnail", t).Msg("could not remove thumbnail")
			}
		}
	}()

	for i, offset := range offsets {
		thumb, err := b.extractThumbnail(ctx, video, i+1, offset, tempDir)
		if thumb != "" {
			thumbnails = append(thumbnails, thumb)
		}
		if err != nil {
			return false, err
		}
		b.log.Debug().Int("index", i+1).Float64("offset", offset).Msg("thumbnail extracted")
		progress.step()
	}

	if err := b.composeMontage(ctx, video, thumbnails, output); err != nil {
		return false, err
	}
	progress.step()

	b.log.Info().Str("montage", output).Msg("montage written")
	return false, nil
}

// outputPath places the montage next to the video unless an output
// directory is configured. The basename keeps the source extension, so
// clip.mkv and clip.mp4 in one directory cannot claim the same montage.
func (b *Builder) outputPath(videoPath string) string {
	dir := b.cfg.OutDir
	if dir == "" {
		dir = filepath.Dir(videoPath)
	}
	return filepath.Join(dir, filepath.Base(videoPath)+"."+b.cfg.Format)
}
