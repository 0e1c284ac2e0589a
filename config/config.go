package config

import (
	"github.com/neuronlabs/errors"
	"gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// Controller defines the configuration for the inclusion parameter parsing.
type Controller struct {
	// NamingConvention is the naming convention used while mapping the
	// included relation names into collection names.
	// Allowed values:
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lower_camel snake kebab"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`

	// NestedIncludeLimit is the maximum nesting level allowed for a single
	// included relation path. The nesting level is the number of nested
	// separators within the path - i.e. 'posts.comments' has the nesting
	// level of 1. Paths nested deeper than the limit are being skipped.
	// The zero value means no limit.
	NestedIncludeLimit int `mapstructure:"nested_include_limit" validate:"gte=0"`

	// IncludedLimit is the maximum number of included relation paths allowed
	// within a single query parameter value. The limit is reported by the
	// parameter validation only - it doesn't affect the parsed results.
	// The zero value means no limit.
	IncludedLimit int `mapstructure:"included_limit" validate:"gte=0"`
}

// Validate checks the provided config values.
func (c *Controller) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NewDet(ClassConfigInvalidValue, "validating config failed")
	}
	return nil
}
