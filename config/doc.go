// Package config loads CLI configuration from a YAML file with environment
// variable overrides. Precedence: defaults, then file values, then
// PLOTVAULT_* environment variables.
//
// The package owns its own plain structs so file and env concerns stay out
// of the library packages; ContainerConfig converts into the typed
// container.Config the backends consume.
package config
