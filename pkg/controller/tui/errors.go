package tui

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrAborted is returned when the user interrupts a prompt (Ctrl+C)
	ErrAborted = goerr.New("prompt aborted")
)
