package session

import "fmt"

// ErrorKind classifies an operation failure so callers can branch on
// the class instead of matching error strings.
type ErrorKind int

const (
	// KindValidation is a local precondition violation; no network
	// call was made.
	KindValidation ErrorKind = iota + 1

	// KindPermissionDenied is a platform rejection for insufficient
	// API access tier.
	KindPermissionDenied

	// KindTransient covers every other network or platform failure.
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPermissionDenied:
		return "permission_denied"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// OpError is a classified failure from a Session operation. Operations
// return it as a value; nothing panics past the Session boundary.
type OpError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// PostResult is a successfully created post.
type PostResult struct {
	ID   string
	Text string
}
