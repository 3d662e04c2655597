// Package config loads process configuration from environment variables.
//
// Load first applies `.env` files with github.com/joho/godotenv (never
// overriding variables that are already set) and then parses the environment
// into a struct with github.com/caarlos0/env/v11 field tags. If the struct
// has a `Validate() error` method it is called after parsing.
//
// Environment is a text-unmarshalable type for APP_ENV.
package config
