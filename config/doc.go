// Package config loads flowkit engine configuration from YAML files,
// .env files, and FLOWKIT_-prefixed environment variables, in that order
// of increasing precedence.
package config
