package montage

import (
	"math"
	"strings"
	"testing"
)

const probeFixture = `{
	"streams": [
		{
			"codec_name": "aac",
			"codec_type": "audio"
		},
		{
			"codec_name": "h264",
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"avg_frame_rate": "30000/1001"
		}
	],
	"format": {
		"duration": "5983.4200"
	}
}`

func TestParseProbeOutput(t *testing.T) {
	video, err := parseProbeOutput([]byte(probeFixture))
	if err != nil {
		t.Fatalf("parseProbeOutput() error = %v", err)
	}

	if math.Abs(video.Duration-5983.42) > 1e-6 {
		t.Errorf("Expected duration 5983.42, got %v", video.Duration)
	}
	if video.Codec != "h264" {
		t.Errorf("Expected codec h264, got %q", video.Codec)
	}
	if video.Resolution != "1920x1080" {
		t.Errorf("Expected resolution 1920x1080, got %q", video.Resolution)
	}
	if math.Abs(video.FPS-29.97) > 0.01 {
		t.Errorf("Expected ~29.97 fps, got %v", video.FPS)
	}
}

func TestParseProbeOutput_SkipsNonVideoStreams(t *testing.T) {
	data := `{"streams":[{"codec_name":"aac","codec_type":"audio"}],"format":{"duration":"12.0"}}`

	video, err := parseProbeOutput([]byte(data))
	if err != nil {
		t.Fatalf("parseProbeOutput() error = %v", err)
	}
	if video.Codec != "" || video.Resolution != "" {
		t.Errorf("Audio-only input should leave stream fields empty, got %+v", video)
	}
	if video.Duration != 12 {
		t.Errorf("Expected duration 12, got %v", video.Duration)
	}
}

func TestParseProbeOutput_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", "Duration: 01:39:43", "parse ffprobe output"},
		{"missing duration", `{"format":{}}`, "no duration"},
		{"garbage duration", `{"format":{"duration":"soon"}}`, "parse duration"},
		{"zero duration", `{"format":{"duration":"0"}}`, "non-positive duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProbeOutput([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		rate string
		want float64
	}{
		{"30000/1001", 29.97},
		{"25/1", 25},
		{"24", 24},
		{"0/0", 0},
		{"", 0},
		{"x/y", 0},
		{"10/0", 0},
	}

	for _, tt := range tests {
		got := parseFrameRate(tt.rate)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
