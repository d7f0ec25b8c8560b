package parsing

import "fmt"

// SlotDecodeError represents a failure to decode dialogue slots into a profile
type SlotDecodeError struct {
	Message string
	Cause   error
}

func (e *SlotDecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("slot decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("slot decode error: %s", e.Message)
}

func (e *SlotDecodeError) Unwrap() error {
	return e.Cause
}
