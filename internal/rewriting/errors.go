package rewriting

import "fmt"

// APICallError represents an error from the generative capability.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates the generative capability returned text
// that does not follow the section's output convention.
type MalformedResponseError struct {
	Section string
	Reason  string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response for %s section: %s", e.Section, e.Reason)
}
