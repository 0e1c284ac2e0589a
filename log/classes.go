package log

import (
	"github.com/neuronlabs/errors"
)

var (
	// MjrLogger is the major error classification for the log package.
	MjrLogger errors.Major

	// ClassLoggerUnknownLevel is the error classification for unknown logger levels.
	ClassLoggerUnknownLevel errors.Class
	// ClassLoggerNotImplement is the error classification for loggers that
	// don't implement a required interface.
	ClassLoggerNotImplement errors.Class
)

func init() {
	MjrLogger = errors.MustNewMajor()

	ClassLoggerUnknownLevel = errors.MustNewMajorClass(MjrLogger)
	ClassLoggerNotImplement = errors.MustNewMajorClass(MjrLogger)
}
