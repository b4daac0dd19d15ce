package form

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNilContainer = errors.New("form: container is nil")

// FieldError collects the submit-time messages of one field.
type FieldError struct {
	FieldID  string
	Label    string
	Messages []string
}

// ErrorList is the outcome of one submit attempt, in document order.
type ErrorList []FieldError

// Error implements the error interface with the first message of each field.
func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "form validation failed"
	}

	parts := make([]string, 0, len(l))
	for _, fe := range l {
		if len(fe.Messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Label, fe.Messages[0]))
		}
	}
	return fmt.Sprintf("form validation error: %s", strings.Join(parts, ", "))
}

// Err returns the list as an error, or nil when it is empty.
func (l ErrorList) Err() error {
	if l.IsEmpty() {
		return nil
	}
	return l
}

// Get returns the first message for a field.
func (l ErrorList) Get(fieldID string) string {
	for _, fe := range l {
		if fe.FieldID == fieldID && len(fe.Messages) > 0 {
			return fe.Messages[0]
		}
	}
	return ""
}

// Has reports whether a field has any errors.
func (l ErrorList) Has(fieldID string) bool {
	for _, fe := range l {
		if fe.FieldID == fieldID {
			return len(fe.Messages) > 0
		}
	}
	return false
}

// FieldIDs returns the IDs of the failing fields, in document order.
func (l ErrorList) FieldIDs() []string {
	ids := make([]string, len(l))
	for i, fe := range l {
		ids[i] = fe.FieldID
	}
	return ids
}

// IsEmpty returns true if there are no errors.
func (l ErrorList) IsEmpty() bool {
	return len(l) == 0
}
