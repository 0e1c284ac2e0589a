package controller

import (
	"github.com/neuronlabs/inclusion/config"
)

// DefaultController is the default controller used if no 'controller' is provided for operations.
var DefaultController *Controller

// Default returns the current default controller.
func Default() *Controller {
	if DefaultController == nil {
		DefaultController = newDefault()
	}
	return DefaultController
}

// NewDefault creates new default controller based on the default config.
func NewDefault() *Controller {
	return newDefault()
}

func newDefault() *Controller {
	c, err := NewController(config.Default())
	if err != nil {
		panic(err)
	}
	return c
}
