package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// New builds the process logger. Everything goes to stderr so artifact
// output on stdout stays clean.
func New(debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
