package controller

import (
	"github.com/neuronlabs/errors"
)

var (
	// MjrController is the major error classification for the controller package.
	MjrController errors.Major

	// ClassInvalidConfig is the error classification for invalid controller configs.
	ClassInvalidConfig errors.Class
)

func init() {
	MjrController = errors.MustNewMajor()

	ClassInvalidConfig = errors.MustNewMajorClass(MjrController)
}
