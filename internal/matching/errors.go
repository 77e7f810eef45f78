package matching

import "fmt"

// RemoteError describes a failed call to an optional scoring collaborator.
type RemoteError struct {
	Scorer     string
	StatusCode int
	Message    string
	Cause      error
}

func (e *RemoteError) Error() string {
	prefix := fmt.Sprintf("%s scorer", e.Scorer)
	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("%s (status %d)", prefix, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}
