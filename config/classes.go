package config

import (
	"github.com/neuronlabs/errors"
)

var (
	// MjrConfig is the major config error classification.
	MjrConfig errors.Major

	// ClassConfigInvalidValue is the error classification for invalid config values.
	ClassConfigInvalidValue errors.Class
	// ClassConfigRead is the error classification for config reading failures.
	ClassConfigRead errors.Class
)

func init() {
	MjrConfig = errors.MustNewMajor()

	ClassConfigInvalidValue = errors.MustNewMajorClass(MjrConfig)
	ClassConfigRead = errors.MustNewMajorClass(MjrConfig)
}
