package ports

// Sink persists run artifacts to local storage. Both methods return the
// written path.
type Sink interface {
	// SaveFile writes raw bytes under the output directory.
	SaveFile(name string, data []byte) (string, error)

	// SaveJSON writes v pretty-printed under the output directory. The write
	// must be atomic: a failed run never leaves a partial document behind.
	SaveJSON(name string, v any) (string, error)
}
