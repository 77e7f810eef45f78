package ingestion

import "fmt"

// CoerceError is returned when a payload cannot be turned into an engine type at all.
type CoerceError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *CoerceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot read %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("cannot read %s: %s", e.Kind, e.Message)
}

func (e *CoerceError) Unwrap() error {
	return e.Cause
}
