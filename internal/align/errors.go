package align

import "fmt"

// EmptySequenceError is returned when an input sequence has zero length.
// Empty input is an error condition, not a zero-result success.
type EmptySequenceError struct {
	Which string
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("%s sequence is empty", e.Which)
}

// IncompatibleAlphabetError is returned when a sequence's alphabet is not
// covered by the supplied similarity matrix.
type IncompatibleAlphabetError struct {
	Alphabet string
	Matrix   string
}

func (e *IncompatibleAlphabetError) Error() string {
	return fmt.Sprintf("alphabet %s is not covered by matrix %s", e.Alphabet, e.Matrix)
}

// InvalidParametersError is returned for malformed gap costs, a missing
// matrix, or a non-positive maximum alignment count.
type InvalidParametersError struct {
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return "invalid alignment parameters: " + e.Reason
}
