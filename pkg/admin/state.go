package admin

// State is the lifecycle position of one editing session
type State int

const (
	StateIdle State = iota
	StateListing
	StateReady
	StateEditing
	StateSubmitting
	StateConfirmingDelete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListing:
		return "listing"
	case StateReady:
		return "ready"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming_delete"
	default:
		return "unknown"
	}
}
