package convert

// Prober reports whether a media file contains an audio stream.
// Implementations must fail closed: any probe error means "no audio".
type Prober interface {
	HasAudioStream(path string) bool
}

// Executor runs an external command synchronously, returning its exit
// code and captured standard error output. err is non-nil only when the
// command could not be run at all.
type Executor interface {
	Run(name string, args ...string) (exitCode int, stderr string, err error)
}
