// Package config loads service configuration from an optional JSON
// file with environment variable overrides. A .env file in the
// working directory is folded into the environment first, so local
// development needs no exported variables.
package config
