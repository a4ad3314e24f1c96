package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidBackend     = goerr.New("invalid repository backend")
	ErrMissingFlag        = goerr.New("required flag is not set")
	ErrUnsupportedFormat  = goerr.New("unsupported schema file format")
	ErrInvalidLogLevel    = goerr.New("invalid log level")
	ErrInvalidLogFormat   = goerr.New("invalid log format")
	ErrConflictingStorage = goerr.New("only one upload storage can be configured")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	FlagKey       = "flag"
	BackendKey    = "backend"
)
