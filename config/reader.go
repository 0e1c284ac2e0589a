package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/inclusion/log"
)

var defaultConfig *Controller

// ViperSetDefaults sets the default config values for the provided viper instance.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Controller, error) {
	return readNamedConfig(name)
}

// ReadConfig reads the config with the default 'config' name.
func ReadConfig() (*Controller, error) {
	return readNamedConfig("config")
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Controller {
	return readDefaultConfig()
}

func readNamedConfig(name string) (*Controller, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &Controller{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Controller Config failed. %v", err)
		return nil, err
	}

	return c, nil
}

func readDefaultConfig() *Controller {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Controller{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling Config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}

	return defaultConfig
}

// Default values.
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention":    "snake",
		"nested_include_limit": 0,
		"included_limit":       0,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
