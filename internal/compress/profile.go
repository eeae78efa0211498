package compress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FFmpeg constants for compression settings
const (
	// Video codec settings
	VideoCodec = "libx264"

	// Audio codec settings
	AudioCodec = "aac"

	// Stream copy codec for remux-only runs
	CopyCodec = "copy"

	// Container flags
	FastStartFlag = "+faststart"

	// Output suffix and container
	CompressedSuffix   = "-compressed"
	OutputExtensionMP4 = ".mp4"
)

// Profile names accepted at the CLI and UI boundary
const (
	ProfileNameExtreme = "extreme"
	ProfileNameMedium  = "medium"
	ProfileNameFast    = "fast"
)

// ErrInvalidProfile is returned for any profile other than extreme, medium or fast.
var ErrInvalidProfile = errors.New("invalid compression level specified")

// encodeParams is the re-encode parameter set of a profile.
type encodeParams struct {
	preset string
	crf    int
}

// Profile selects how ffmpeg treats the input. The only valid values are
// Extreme, Medium and Fast; the zero Profile is rejected before ffmpeg runs.
type Profile struct {
	name   string
	encode *encodeParams // nil means stream copy
}

var (
	// Extreme re-encodes with the highest compression effort
	Extreme = Profile{name: ProfileNameExtreme, encode: &encodeParams{preset: "slow", crf: 28}}
	// Medium re-encodes with balanced settings and is the default
	Medium = Profile{name: ProfileNameMedium, encode: &encodeParams{preset: "medium", crf: 23}}
	// Fast only changes the container, copying both streams
	Fast = Profile{name: ProfileNameFast}
)

// DefaultProfile is used when the caller does not choose one
var DefaultProfile = Medium

// Profiles returns the valid profiles in presentation order
func Profiles() []Profile {
	return []Profile{Extreme, Medium, Fast}
}

// ParseProfile converts an external profile name into a Profile
func ParseProfile(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q (choose from %s)", ErrInvalidProfile, name, strings.Join(ProfileNames(), ", "))
}

// ProfileNames returns the accepted profile names
func ProfileNames() []string {
	names := make([]string, 0, 3)
	for _, p := range Profiles() {
		names = append(names, p.name)
	}
	return names
}

// String returns the profile name
func (p Profile) String() string {
	return p.name
}

// IsValid reports whether p is one of Extreme, Medium or Fast
func (p Profile) IsValid() bool {
	return p == Extreme || p == Medium || p == Fast
}

// IsStreamCopy reports whether the profile remuxes without re-encoding
func (p Profile) IsStreamCopy() bool {
	return p.IsValid() && p.encode == nil
}

// CRF returns the constant rate factor, or false for stream copy
func (p Profile) CRF() (int, bool) {
	if !p.IsValid() || p.encode == nil {
		return 0, false
	}
	return p.encode.crf, true
}

// Preset returns the x264 preset, or false for stream copy
func (p Profile) Preset() (string, bool) {
	if !p.IsValid() || p.encode == nil {
		return "", false
	}
	return p.encode.preset, true
}

// BuildFFmpegArgs builds the ffmpeg command arguments for one run
func (p Profile) BuildFFmpegArgs(inputPath, outputPath string) ([]string, error) {
	if !p.IsValid() {
		return nil, ErrInvalidProfile
	}

	args := []string{
		"-y",            // Destination was confirmed by the caller
		"-i", inputPath, // Input file
	}

	if p.encode == nil {
		return append(args,
			"-c:v", CopyCodec,
			"-c:a", CopyCodec,
			outputPath,
		), nil
	}

	return append(args,
		"-c:v", VideoCodec, // H.264 for compatibility
		"-preset", p.encode.preset, // Encoding preset
		"-crf", strconv.Itoa(p.encode.crf), // Constant rate factor
		"-c:a", AudioCodec, // Audio codec
		"-movflags", FastStartFlag, // MP4 optimization
		outputPath,
	), nil
}

// StartMessage is the status shown while a job runs
func (p Profile) StartMessage() string {
	return fmt.Sprintf("Compressing with %s mode, please wait...", p.name)
}

// SuccessMessage is the status shown after ffmpeg exits successfully
func (p Profile) SuccessMessage() string {
	if p.IsStreamCopy() {
		return "Transformation completed with fast mode."
	}
	return fmt.Sprintf("Video compressed successfully with %s compression!", p.name)
}

// SuggestOutputPath derives an .mp4 output path next to the input
func SuggestOutputPath(inputPath string) string {
	ext := filepathExt(inputPath)
	baseName := strings.TrimSuffix(inputPath, ext)
	return baseName + CompressedSuffix + OutputExtensionMP4
}

// EnsureMP4Extension appends .mp4 when the path has no extension
func EnsureMP4Extension(outputPath string) string {
	if filepathExt(outputPath) == "" {
		return outputPath + OutputExtensionMP4
	}
	return outputPath
}

// filepathExt is filepath.Ext that ignores dots in directory names
func filepathExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
