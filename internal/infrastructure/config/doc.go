// Package config handles loading and validating Slipstream client configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (bot token, telemetry token) should be set via
//     environment variables, not the config file
//   - The config file should have restricted permissions (0600)
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Library packages do not depend on this package: each defines its own
// small Config struct and the binary maps between the two, keeping the
// public packages usable without this loader.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
package config
