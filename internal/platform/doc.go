package platform

// Package platform contains OS/external tooling glue: discovery of the
// ffmpeg/ffprobe executables, filesystem helpers, output path naming,
// and opening folders in the system file manager.
