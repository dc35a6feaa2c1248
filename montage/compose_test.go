package montage

import (
	"strings"
	"testing"
)

func TestTileColumns(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{25, 5},
		{26, 6},
	}

	for _, tt := range tests {
		if got := tileColumns(tt.n); got != tt.want {
			t.Errorf("tileColumns(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestMontageArgs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BackgroundColor = "gray"
	cfg.LabelColor = "yellow"
	cfg.ThumbSize = 200

	thumbs := []string{"/tmp/a_001.jpg", "/tmp/a_002.jpg", "/tmp/a_003.jpg", "/tmp/a_004.jpg", "/tmp/a_005.jpg"}
	args := montageArgs(cfg, "File: a.mp4", thumbs, "/out/a.mp4.jpg")
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-background gray",
		"-borderwidth 0",
		"-fill yellow",
		"-title File: a.mp4",
		"-geometry 200x200+1+1",
		"-tile 3x",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected args to contain %q, got: %s", want, joined)
		}
	}

	if args[len(args)-1] != "/out/a.mp4.jpg" {
		t.Errorf("Output path should be the last argument, got %s", args[len(args)-1])
	}

	// Thumbnails must stay in extraction order, right before the output path.
	gotThumbs := args[len(args)-1-len(thumbs) : len(args)-1]
	for i, thumb := range thumbs {
		if gotThumbs[i] != thumb {
			t.Errorf("Thumbnail %d out of order: expected %s, got %s", i, thumb, gotThumbs[i])
		}
	}
}

func TestMontageLabel(t *testing.T) {
	v := &Video{
		Basename:   "trip.mkv",
		Codec:      "h264",
		Resolution: "1280x720",
		Duration:   5983,
	}

	label := montageLabel(v)
	want := "File: trip.mkv | Codec: h264 | Resolution: 1280x720 | Length 1:39:43"
	if label != want {
		t.Errorf("Expected label %q, got %q", want, label)
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{61, "0:01:01"},
		{3600, "1:00:00"},
		{5983, "1:39:43"},
		{5983.42, "1:39:43"},
		{86399, "23:59:59"},
	}

	for _, tt := range tests {
		if got := formatLength(tt.seconds); got != tt.want {
			t.Errorf("formatLength(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
