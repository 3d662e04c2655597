package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a .env file exists but cannot be read, or an explicit file is missing
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidConfig is returned when the parsed config fails its own Validate method
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrUnknownEnvironment is returned for an APP_ENV value that is not recognised
	ErrUnknownEnvironment = errors.New("unknown environment")
)
