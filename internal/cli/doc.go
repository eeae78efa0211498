// Package cli implements the vidsquid command line: tool resolution, batch
// compression and the hand-off to the graphical interface.
package cli
