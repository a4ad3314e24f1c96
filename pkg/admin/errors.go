package admin

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotReady is returned when an action is requested outside the Ready state
	ErrNotReady = goerr.New("controller is not ready")
	// ErrNotEditing is returned for draft edits while no edit surface is open
	ErrNotEditing = goerr.New("no draft is being edited")
	// ErrNoRecordID is returned when editing an item without an id
	ErrNoRecordID = goerr.New("record has no id")
	// ErrNoTaskParser is returned when text-to-task is used without a parser
	ErrNoTaskParser = goerr.New("task parser is not configured")
)

// Context keys for error values
const (
	StateKey    = "state"
	ResourceKey = "resource"
	RecordIDKey = "record_id"
)
