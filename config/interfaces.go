package config

// IServiceConfiguration defines a configuration structure which can be loaded and validated.
type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}
