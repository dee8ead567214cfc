// Package config loads bankd configuration from a YAML file with
// environment-variable overrides. Precedence: defaults, then file, then
// BANKD_* environment variables.
package config
