package scoring

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is wrapped by every answer-vector validation failure.
var ErrMalformedInput = errors.New("malformed answers")

// InputError describes why an answer vector was rejected. Position is -1 when
// the problem concerns the vector as a whole (its length).
type InputError struct {
	Position int
	Value    int
	Reason   string
}

func (e *InputError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
	}
	return fmt.Sprintf("%v: answer %d (question %d) is %d: %s",
		ErrMalformedInput, e.Position, e.Position+1, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrMalformedInput
}
