// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, overridden by CAMPAIGN_* environment
// variables, and validated before use. Secrets (JWT key, storage and SMS credentials,
// database DSN) can be supplied only through the environment.
package config
