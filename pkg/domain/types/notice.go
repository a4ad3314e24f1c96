package types

// NoticeKind classifies a user-facing notification
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// String returns the string representation of the notice kind
func (k NoticeKind) String() string {
	return string(k)
}
