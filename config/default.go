package config

// Default returns the default config for the inclusion controller.
func Default() *Controller {
	return readDefaultConfig()
}
