// Package config handles configuration management for editfile.
// It layers the embedded defaults, the user configuration file,
// EDITFILE_* environment variables and command-line overrides.
package config
