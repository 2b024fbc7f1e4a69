package convert

// Package convert implements the conversion core built on top of the
// ffmpeg/ffprobe command line tools: quality profiles, audio tempo
// decomposition, ffmpeg argument assembly, audio stream probing, and
// the sequential batch runner that feeds progress and log events back
// to the UI.
