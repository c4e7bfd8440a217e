package sequence

import "fmt"

// InvalidSymbolError is returned when sequence data contains a symbol that
// is not a member of the declared alphabet.
type InvalidSymbolError struct {
	Position int
	Symbol   byte
	Alphabet string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol '%c' at position %d for alphabet %s",
		e.Symbol, e.Position, e.Alphabet)
}
