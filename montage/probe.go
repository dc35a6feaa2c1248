package montage

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Video is the probed description of one input file: everything the
// pipeline needs to place offsets and label the montage.
type Video struct {
	Path       string
	Basename   string  // file name including its extension
	Duration   float64 // seconds
	Codec      string
	Resolution string // "1920x1080"; empty when no video stream reports dimensions
	FPS        float64
}

// probeResult mirrors the slice of ffprobe's JSON output we care about.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
}

// probeVideo asks ffprobe for the file's duration and first video stream
// metadata.
func (b *Builder) probeVideo(ctx context.Context, path string) (*Video, error) {
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}
	stdout, stderr, err := b.runTool(ctx, "ffprobe", args)
	if err != nil {
		return nil, &ProbeError{Path: path, Err: toolError(err, stderr)}
	}

	video, err := parseProbeOutput(stdout)
	if err != nil {
		return nil, &ProbeError{Path: path, Err: err}
	}
	video.Path = path
	video.Basename = filepath.Base(path)
	return video, nil
}

// parseProbeOutput decodes ffprobe JSON into a Video. Split out from the
// subprocess call so it can be fed canned output in tests.
func parseProbeOutput(data []byte) (*Video, error) {
	var result probeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if result.Format.Duration == "" {
		return nil, fmt.Errorf("no duration reported")
	}
	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("parse duration %q: %w", result.Format.Duration, err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("non-positive duration %.2f", duration)
	}

	video := &Video{Duration: duration}
	for _, stream := range result.Streams {
		if stream.CodecType != "video" {
			continue
		}
		video.Codec = stream.CodecName
		if stream.Width > 0 && stream.Height > 0 {
			video.Resolution = fmt.Sprintf("%dx%d", stream.Width, stream.Height)
		}
		video.FPS = parseFrameRate(stream.AvgFrameRate)
		break
	}
	return video, nil
}

// parseFrameRate turns ffprobe's rational rate ("30000/1001") into a float.
// Unparseable rates come back as zero.
func parseFrameRate(rate string) float64 {
	if rate == "" || rate == "0/0" {
		return 0
	}
	num, den, found := strings.Cut(rate, "/")
	if !found {
		f, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return 0
		}
		return f
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
