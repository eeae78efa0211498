package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Required external tools
const (
	FFmpegName  = "ffmpeg"
	FFprobeName = "ffprobe"
)

// Search path environment
const (
	PathEnvVar       = "PATH"
	WindowsExeSuffix = ".exe"
)

// FallbackDirs are conventional install locations searched after PATH.
var FallbackDirs = []string{
	`C:\ffmpeg\bin`,
	`C:\Program Files\ffmpeg\bin`,
	`C:\Program Files (x86)\ffmpeg\bin`,
	"/usr/local/bin",    // Homebrew (Intel macOS) and Linux
	"/opt/homebrew/bin", // Homebrew (Apple Silicon)
	"/usr/bin",
	"/bin",
	"/usr/sbin",
	"/sbin",
}

// ErrToolNotFound is matched by MissingToolsError.
var ErrToolNotFound = errors.New("required tool not found")

// MissingToolsError lists every required tool the locator could not find.
type MissingToolsError struct {
	Names []string
}

func (e *MissingToolsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrToolNotFound, strings.Join(e.Names, ", "))
}

func (e *MissingToolsError) Unwrap() error {
	return ErrToolNotFound
}

// Toolchain holds the resolved ffmpeg and ffprobe paths for one run.
type Toolchain struct {
	FFmpeg  string
	FFprobe string
}

// Locator finds executables on PATH and in FallbackDirs.
type Locator struct {
	getenv   func(string) string
	stat     func(string) (os.FileInfo, error)
	goos     string
	fallback []string
}

// NewLocator builds a locator using the process environment.
func NewLocator() *Locator {
	return &Locator{
		getenv:   os.Getenv,
		stat:     os.Stat,
		goos:     runtime.GOOS,
		fallback: FallbackDirs,
	}
}

// NewLocatorForTests creates a locator with injectable dependencies.
func NewLocatorForTests(
	getenv func(string) string,
	stat func(string) (os.FileInfo, error),
	goos string,
	fallback []string,
) *Locator {
	return &Locator{
		getenv:   getenv,
		stat:     stat,
		goos:     goos,
		fallback: fallback,
	}
}

// SearchDirs returns PATH entries in their inherited order followed by the fallback list.
func (l *Locator) SearchDirs() []string {
	dirs := make([]string, 0, len(l.fallback)+8)
	for _, dir := range filepath.SplitList(l.getenv(PathEnvVar)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return append(dirs, l.fallback...)
}

// Find returns the first executable called name in SearchDirs.
// The boolean is false when no candidate qualifies.
func (l *Locator) Find(name string) (string, bool) {
	names := []string{name}
	if l.goos == OSWindows && !strings.EqualFold(filepath.Ext(name), WindowsExeSuffix) {
		names = append(names, name+WindowsExeSuffix)
	}

	for _, dir := range l.SearchDirs() {
		for _, n := range names {
			candidate := filepath.Join(dir, n)
			if l.isExecutable(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// ResolveToolchain finds ffmpeg and ffprobe, reporting all missing tools at once.
func (l *Locator) ResolveToolchain() (Toolchain, error) {
	var missing []string

	ffmpeg, ok := l.Find(FFmpegName)
	if !ok {
		missing = append(missing, FFmpegName)
	}
	ffprobe, ok := l.Find(FFprobeName)
	if !ok {
		missing = append(missing, FFprobeName)
	}

	if len(missing) > 0 {
		return Toolchain{}, &MissingToolsError{Names: missing}
	}
	return Toolchain{FFmpeg: ffmpeg, FFprobe: ffprobe}, nil
}

// isExecutable reports whether path is a regular file the current user may run.
// Windows has no execute bit, so any regular file qualifies there.
func (l *Locator) isExecutable(path string) bool {
	info, err := l.stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if l.goos == OSWindows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
