package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrRecordNotFound = goerr.New("record not found")
	ErrEventNotFound  = goerr.New("event not found")
	ErrUploadNotFound = goerr.New("upload not found")

	// Authentication errors
	ErrInvalidSecretCode  = goerr.New("invalid secret code")
	ErrUsernameTaken      = goerr.New("username already registered")
	ErrInvalidCredentials = goerr.New("invalid username or password")
	ErrInvalidToken       = goerr.New("invalid token")

	// Input errors
	ErrInvalidInput = goerr.New("invalid input")

	// Configuration errors
	ErrStorageNotConfigured = goerr.New("upload storage is not configured")
)

// Context keys for error values
const (
	ResourceKey = "resource"
	RecordIDKey = "record_id"
	EventIDKey  = "event_id"
	UsernameKey = "username"
	FilenameKey = "filename"
	PageIDKey   = "page_id"
)
