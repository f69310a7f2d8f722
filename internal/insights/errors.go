package insights

import "fmt"

// InvalidProfileError reports a structurally invalid profile. Missing or
// partially filled sections are never reported as errors; only malformed
// values (unknown enum members, impossible numbers) are.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &InvalidProfileError{Field: field, Reason: reason}
}
