package compress

import (
	"errors"
	"strings"
	"testing"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name     string
		expected Profile
	}{
		{"extreme", Extreme},
		{"medium", Medium},
		{"fast", Fast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.name)
			if err != nil {
				t.Fatalf("ParseProfile(%q) error = %v", tt.name, err)
			}
			if got != tt.expected {
				t.Errorf("ParseProfile(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestParseProfile_Invalid(t *testing.T) {
	for _, name := range []string{"ultra", "", "Medium", " fast", "EXTREME"} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseProfile(name)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("ParseProfile(%q) error = %v, expected ErrInvalidProfile", name, err)
			}
			if got.IsValid() {
				t.Errorf("ParseProfile(%q) returned valid profile %v", name, got)
			}
		})
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	tests := []struct {
		profile  Profile
		expected []string
	}{
		{
			Extreme,
			[]string{"-y", "-i", "/in.mov", "-c:v", "libx264", "-preset", "slow", "-crf", "28", "-c:a", "aac", "-movflags", "+faststart", "/out.mp4"},
		},
		{
			Medium,
			[]string{"-y", "-i", "/in.mov", "-c:v", "libx264", "-preset", "medium", "-crf", "23", "-c:a", "aac", "-movflags", "+faststart", "/out.mp4"},
		},
		{
			Fast,
			[]string{"-y", "-i", "/in.mov", "-c:v", "copy", "-c:a", "copy", "/out.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			args, err := tt.profile.BuildFFmpegArgs("/in.mov", "/out.mp4")
			if err != nil {
				t.Fatalf("BuildFFmpegArgs() error = %v", err)
			}
			if strings.Join(args, " ") != strings.Join(tt.expected, " ") {
				t.Errorf("BuildFFmpegArgs() = %v, expected %v", args, tt.expected)
			}
		})
	}
}

func TestBuildFFmpegArgs_ZeroProfile(t *testing.T) {
	_, err := Profile{}.BuildFFmpegArgs("/in.mov", "/out.mp4")
	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestProfileParameters(t *testing.T) {
	if crf, ok := Extreme.CRF(); !ok || crf != 28 {
		t.Errorf("Extreme.CRF() = (%d, %v)", crf, ok)
	}
	if preset, ok := Extreme.Preset(); !ok || preset != "slow" {
		t.Errorf("Extreme.Preset() = (%s, %v)", preset, ok)
	}
	if crf, ok := Medium.CRF(); !ok || crf != 23 {
		t.Errorf("Medium.CRF() = (%d, %v)", crf, ok)
	}
	if preset, ok := Medium.Preset(); !ok || preset != "medium" {
		t.Errorf("Medium.Preset() = (%s, %v)", preset, ok)
	}
	if _, ok := Fast.CRF(); ok {
		t.Error("Fast should have no CRF")
	}
	if !Fast.IsStreamCopy() || Medium.IsStreamCopy() || (Profile{}).IsStreamCopy() {
		t.Error("only Fast is a stream copy")
	}
	if DefaultProfile != Medium {
		t.Errorf("DefaultProfile = %v, expected medium", DefaultProfile)
	}
}

func TestProfileMessages(t *testing.T) {
	tests := []struct {
		profile Profile
		start   string
		success string
	}{
		{Extreme, "Compressing with extreme mode, please wait...", "Video compressed successfully with extreme compression!"},
		{Medium, "Compressing with medium mode, please wait...", "Video compressed successfully with medium compression!"},
		{Fast, "Compressing with fast mode, please wait...", "Transformation completed with fast mode."},
	}

	for _, tt := range tests {
		if got := tt.profile.StartMessage(); got != tt.start {
			t.Errorf("%s StartMessage() = %q", tt.profile, got)
		}
		if got := tt.profile.SuccessMessage(); got != tt.success {
			t.Errorf("%s SuccessMessage() = %q", tt.profile, got)
		}
	}
}

func TestSuggestOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/path/to/video.mp4", "/path/to/video-compressed.mp4"},
		{"/path/to/video.mkv", "/path/to/video-compressed.mp4"},
		{"video.avi", "video-compressed.mp4"},
		{"/no/ext/file", "/no/ext/file-compressed.mp4"},
		{"/dir.d/file", "/dir.d/file-compressed.mp4"},
	}

	for _, test := range tests {
		if result := SuggestOutputPath(test.input); result != test.expected {
			t.Errorf("SuggestOutputPath(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestEnsureMP4Extension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/out/clip", "/out/clip.mp4"},
		{"/out/clip.mp4", "/out/clip.mp4"},
		{"/out/clip.mov", "/out/clip.mov"},
		{"/out.d/clip", "/out.d/clip.mp4"},
	}

	for _, test := range tests {
		if result := EnsureMP4Extension(test.input); result != test.expected {
			t.Errorf("EnsureMP4Extension(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}
