// Package config handles configuration management for pyboot.
// Values are layered from the embedded defaults, an optional user TOML file
// and PYBOOT_ environment variables, then decoded into a Config.
package config
