// Package alphabet defines the closed symbol sets used by sequences.
//
// An Alphabet is an immutable set of single-byte symbols, optionally with
// ambiguity codes that stand in for a set of base symbols (IUPAC codes for
// nucleotides, B/Z/X for proteins). Alphabets are package-level singletons;
// use the registry functions ByName and Infer to resolve one.
package alphabet

import (
	"fmt"
	"strings"
)

// Alphabet is a closed, immutable set of valid symbols.
type Alphabet struct {
	name      string
	symbols   []byte
	member    [256]bool
	ambiguous [256]bool
	bases     map[byte][]byte
}

// newAlphabet builds an alphabet from its unambiguous symbols and an
// ambiguity table mapping each ambiguous symbol to the base symbols it
// may represent.
func newAlphabet(name, unambiguous string, ambiguity map[byte]string) *Alphabet {
	a := &Alphabet{
		name:  name,
		bases: make(map[byte][]byte, len(ambiguity)),
	}
	for i := 0; i < len(unambiguous); i++ {
		sym := unambiguous[i]
		if a.member[sym] {
			panic(fmt.Sprintf("alphabet %s: duplicate symbol %q", name, sym))
		}
		a.member[sym] = true
		a.symbols = append(a.symbols, sym)
	}
	for sym, expansion := range ambiguity {
		if a.member[sym] {
			panic(fmt.Sprintf("alphabet %s: duplicate symbol %q", name, sym))
		}
		a.member[sym] = true
		a.ambiguous[sym] = true
		a.symbols = append(a.symbols, sym)
		a.bases[sym] = []byte(expansion)
	}
	return a
}

// Name returns the alphabet's registered name.
func (a *Alphabet) Name() string {
	return a.name
}

// Len returns the number of symbols, ambiguity codes included.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the alphabet's symbols.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Contains reports whether sym is a member of the alphabet.
func (a *Alphabet) Contains(sym byte) bool {
	return a.member[sym]
}

// IsAmbiguous reports whether sym is an ambiguity code of the alphabet.
func (a *Alphabet) IsAmbiguous(sym byte) bool {
	return a.ambiguous[sym]
}

// BasesOf returns the unambiguous symbols an ambiguity code may represent.
// For an unambiguous member symbol it returns the symbol itself; for a
// symbol outside the alphabet it returns nil.
func (a *Alphabet) BasesOf(sym byte) []byte {
	if !a.member[sym] {
		return nil
	}
	if exp, ok := a.bases[sym]; ok {
		out := make([]byte, len(exp))
		copy(out, exp)
		return out
	}
	return []byte{sym}
}

// Validate checks every symbol in data against the alphabet and returns the
// index of the first offending symbol, or -1 if all symbols are members.
func (a *Alphabet) Validate(data string) int {
	for i := 0; i < len(data); i++ {
		if !a.member[data[i]] {
			return i
		}
	}
	return -1
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("Alphabet(%s, %d symbols)", a.name, len(a.symbols))
}

// IUPAC nucleotide ambiguity expansions, shared by DNA and RNA (with T/U
// swapped for RNA).
func iupac(t byte) map[byte]string {
	return map[byte]string{
		'R': "AG",
		'Y': "C" + string(t),
		'S': "CG",
		'W': "A" + string(t),
		'K': "G" + string(t),
		'M': "AC",
		'B': "CG" + string(t),
		'D': "AG" + string(t),
		'H': "AC" + string(t),
		'V': "ACG",
		'N': "ACG" + string(t),
	}
}

var (
	// DNA holds the four unambiguous deoxyribonucleotides.
	DNA = newAlphabet("dna", "ACGT", nil)

	// AmbiguousDNA extends DNA with the IUPAC ambiguity codes.
	AmbiguousDNA = newAlphabet("ambiguous-dna", "ACGT", iupac('T'))

	// RNA holds the four unambiguous ribonucleotides.
	RNA = newAlphabet("rna", "ACGU", nil)

	// AmbiguousRNA extends RNA with the IUPAC ambiguity codes.
	AmbiguousRNA = newAlphabet("ambiguous-rna", "ACGU", iupac('U'))

	// Protein holds the twenty standard amino acids.
	Protein = newAlphabet("protein", "ARNDCQEGHILKMFPSTWYV", nil)

	// AmbiguousProtein extends Protein with B (D/N), Z (E/Q) and X (any).
	AmbiguousProtein = newAlphabet("ambiguous-protein", "ARNDCQEGHILKMFPSTWYV",
		map[byte]string{
			'B': "DN",
			'Z': "EQ",
			'X': "ARNDCQEGHILKMFPSTWYV",
		})
)

// registry is ordered smallest-first so Infer resolves the most specific
// alphabet that covers the observed symbols.
var registry = []*Alphabet{
	DNA, RNA, AmbiguousDNA, AmbiguousRNA, Protein, AmbiguousProtein,
}

// UnsupportedAlphabetError is returned when no registered alphabet covers a
// set of observed symbols.
type UnsupportedAlphabetError struct {
	Symbol byte
}

func (e *UnsupportedAlphabetError) Error() string {
	return fmt.Sprintf("no registered alphabet contains symbol '%c'", e.Symbol)
}

// ByName resolves a registered alphabet by its name, case-insensitively.
func ByName(name string) (*Alphabet, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, a := range registry {
		if a.name == want {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unknown alphabet %q", name)
}

// Infer returns the smallest registered alphabet containing every symbol of
// data. It fails with UnsupportedAlphabetError if no registered alphabet
// qualifies.
func Infer(data string) (*Alphabet, error) {
	var seen [256]bool
	for i := 0; i < len(data); i++ {
		seen[data[i]] = true
	}
next:
	for _, a := range registry {
		for sym, present := range seen {
			if present && !a.member[sym] {
				continue next
			}
		}
		return a, nil
	}
	// Report the first symbol not covered by the largest registered alphabet.
	widest := registry[len(registry)-1]
	for sym, present := range seen {
		if present && !widest.member[byte(sym)] {
			return nil, &UnsupportedAlphabetError{Symbol: byte(sym)}
		}
	}
	return nil, &UnsupportedAlphabetError{}
}
