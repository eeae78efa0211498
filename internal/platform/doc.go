package platform

// Package platform contains OS integration glue: locating the ffmpeg toolchain on
// PATH and conventional install directories, and revealing or opening output files
// with the system file manager.
