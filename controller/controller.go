package controller

import (
	"net/url"
	"strings"

	"github.com/neuronlabs/errors"
	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/inclusion/config"
	"github.com/neuronlabs/inclusion/log"
	"github.com/neuronlabs/inclusion/namer"
	"github.com/neuronlabs/inclusion/query"
)

// Controller is the structure that controls the inclusion parameter parsing.
// It contains the config and the naming strategy shared by the queries it
// creates.
type Controller struct {
	// Config is the configuration struct for the controller.
	Config *config.Controller
	// NamerFunc defines the function strategy how the included resources
	// and their collections are being named.
	NamerFunc namer.Namer
}

// NewController creates new controller for given config 'cfg'.
func NewController(cfg *config.Controller) (*Controller, error) {
	c := &Controller{}
	if err := c.setConfig(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// NewIncluded creates new query.Included for the optional raw parameter
// 'value' controlled by the controller's config.
func (c *Controller) NewIncluded(value *string) *query.Included {
	return query.NewIncludedWithConfig(c.Config, value)
}

// QueryIncluded creates new query.Included taking the raw value from the
// 'include' parameter of the provided url query 'q'.
func (c *Controller) QueryIncluded(q url.Values) *query.Included {
	values, ok := q[query.QueryParamInclude]
	if !ok || len(values) == 0 {
		return query.NewIncludedWithConfig(c.Config, nil)
	}
	return query.NewIncludedWithConfig(c.Config, &values[0])
}

// IncludedCollections returns the ordered collection names for the top level
// included resources of 'included'. The collection name is the pluralized
// resource name converted with the controller's naming convention.
func (c *Controller) IncludedCollections(included *query.Included) []string {
	var collections []string
	for _, relation := range included.ModelIncludes() {
		collections = append(collections, namer.Collection(c.NamerFunc, relation.Name))
	}
	return collections
}

// setConfig sets and validates provided config.
func (c *Controller) setConfig(cfg *config.Controller) error {
	// if there is no controller config provided throw an error.
	if cfg == nil {
		return errors.NewDet(ClassInvalidConfig, "provided nil config value")
	}

	// set the log level from the provided config.
	if cfg.LogLevel != "" {
		level := unilogger.ParseLevel(cfg.LogLevel)
		if level == unilogger.UNKNOWN {
			return errors.NewDetf(ClassInvalidConfig, "invalid 'log_level' value: '%s'", cfg.LogLevel)
		}
		if log.Logger() == nil {
			log.Default()
		}
		if err := log.SetLevel(level); err != nil {
			return err
		}
	}

	log.Debug3f("Creating new controller with config: '%#v'", cfg)

	// set the naming convention
	cfg.NamingConvention = strings.ToLower(cfg.NamingConvention)

	// validate the config
	if err := cfg.Validate(); err != nil {
		return errors.NewDet(ClassInvalidConfig, "validating config failed")
	}

	switch cfg.NamingConvention {
	case "kebab":
		c.NamerFunc = namer.NamingKebab
	case "camel":
		c.NamerFunc = namer.NamingCamel
	case "lower_camel":
		c.NamerFunc = namer.NamingLowerCamel
	case "snake", "":
		c.NamerFunc = namer.NamingSnake
	default:
		return errors.NewDetf(ClassInvalidConfig, "unknown naming convention name: %s", cfg.NamingConvention)
	}
	log.Debugf("Naming Convention used for the included collections: %s", cfg.NamingConvention)

	c.Config = cfg
	return nil
}
