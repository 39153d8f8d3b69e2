// Package enumjsonerrors defines the errors returned by generated enum
// converters.
package enumjsonerrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoMatch is wrapped by every [DecodeError] and [EncodeError].
var ErrNoMatch = errors.New("no matching enum member")

// DecodeError is returned when a string matches no enum member.
type DecodeError struct {
	// Property names the decoded value. It is the fully qualified enum type
	// name unless a property name was configured.
	Property string

	// Input is the string which failed to decode.
	Input string

	// Labels are the accepted strings in declaration order.
	Labels []string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: cannot decode %q", e.Property, e.Input)
	if len(e.Labels) != 0 {
		b.WriteString(": want one of ")
		for i, label := range e.Labels {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(label))
		}
	}
	return b.String()
}

// Unwrap returns [ErrNoMatch].
func (e *DecodeError) Unwrap() error { return ErrNoMatch }

// EncodeError is returned when a value is not a declared enum member.
type EncodeError struct {
	Property string
	Value    any
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: cannot encode %#v", e.Property, e.Value)
}

// Unwrap returns [ErrNoMatch].
func (e *EncodeError) Unwrap() error { return ErrNoMatch }
