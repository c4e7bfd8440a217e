// Package sequence provides an immutable, alphabet-validated sequence type.
//
// A Sequence is constructed once from raw symbol data and an Alphabet,
// validated at construction, and never mutated afterwards. Sequences are
// safe to share across goroutines without locking.
package sequence

import (
	"fmt"
	"strings"

	"github.com/bioseq/alignkit/internal/alphabet"
)

// Sequence is an ordered, indexed, immutable array of symbols drawn from a
// single alphabet.
type Sequence struct {
	alpha       *alphabet.Alphabet
	symbols     string
	ID          string
	Description string
}

// New creates a sequence over the given alphabet. Symbol data is upper-cased
// before validation; construction fails with InvalidSymbolError if any datum
// is not in the alphabet. Empty sequences are legal.
func New(a *alphabet.Alphabet, data string) (*Sequence, error) {
	if a == nil {
		return nil, fmt.Errorf("alphabet must not be nil")
	}
	normalized := strings.ToUpper(data)
	if pos := a.Validate(normalized); pos >= 0 {
		return nil, &InvalidSymbolError{Position: pos, Symbol: normalized[pos], Alphabet: a.Name()}
	}
	return &Sequence{alpha: a, symbols: normalized}, nil
}

// NewInferred creates a sequence over the smallest registered alphabet that
// covers the data.
func NewInferred(data string) (*Sequence, error) {
	a, err := alphabet.Infer(strings.ToUpper(data))
	if err != nil {
		return nil, err
	}
	return New(a, data)
}

// WithID creates a validated sequence carrying an identifier.
func WithID(a *alphabet.Alphabet, data, id string) (*Sequence, error) {
	seq, err := New(a, data)
	if err != nil {
		return nil, err
	}
	seq.ID = id
	return seq, nil
}

// Alphabet returns the alphabet the sequence was validated against.
func (s *Sequence) Alphabet() *alphabet.Alphabet {
	return s.alpha
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int {
	return len(s.symbols)
}

// At returns the symbol at index i, or false if i is out of bounds.
func (s *Sequence) At(i int) (byte, bool) {
	if i < 0 || i >= len(s.symbols) {
		return 0, false
	}
	return s.symbols[i], true
}

// Symbols returns the sequence's symbol data. The returned string is
// immutable, so callers may scan it directly.
func (s *Sequence) Symbols() string {
	return s.symbols
}

// Subsequence returns a new sequence covering [start, end). The original is
// never mutated.
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end < start {
		return nil, fmt.Errorf("end must not precede start")
	}
	if end > len(s.symbols) {
		return nil, fmt.Errorf("end must not exceed sequence length %d", len(s.symbols))
	}
	return &Sequence{
		alpha:       s.alpha,
		symbols:     s.symbols[start:end],
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// Equal reports structural equality: same alphabet identity and same symbols.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.alpha == other.alpha && s.symbols == other.symbols
}

// HasAmbiguous reports whether the sequence contains any ambiguity code.
func (s *Sequence) HasAmbiguous() bool {
	for i := 0; i < len(s.symbols); i++ {
		if s.alpha.IsAmbiguous(s.symbols[i]) {
			return true
		}
	}
	return false
}

// nucleotide complements, IUPAC codes included. U is substituted before and
// after lookup so one table serves DNA and RNA.
var complementTable = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
}

func isNucleotide(a *alphabet.Alphabet) bool {
	switch a {
	case alphabet.DNA, alphabet.AmbiguousDNA, alphabet.RNA, alphabet.AmbiguousRNA:
		return true
	}
	return false
}

func isRNA(a *alphabet.Alphabet) bool {
	return a == alphabet.RNA || a == alphabet.AmbiguousRNA
}

// Complement returns the base-paired complement of a nucleotide sequence.
func (s *Sequence) Complement() (*Sequence, error) {
	if !isNucleotide(s.alpha) {
		return nil, fmt.Errorf("complement requires a nucleotide alphabet, have %s", s.alpha.Name())
	}
	rna := isRNA(s.alpha)
	comp := make([]byte, len(s.symbols))
	for i := 0; i < len(s.symbols); i++ {
		c := s.symbols[i]
		if rna && c == 'U' {
			c = 'T'
		}
		c = complementTable[c]
		if rna && c == 'T' {
			c = 'U'
		}
		comp[i] = c
	}
	return &Sequence{alpha: s.alpha, symbols: string(comp), ID: s.ID, Description: s.Description}, nil
}

// Reverse returns the sequence in reverse order.
func (s *Sequence) Reverse() *Sequence {
	rev := make([]byte, len(s.symbols))
	for i := 0; i < len(s.symbols); i++ {
		rev[i] = s.symbols[len(s.symbols)-1-i]
	}
	return &Sequence{alpha: s.alpha, symbols: string(rev), ID: s.ID, Description: s.Description}
}

// ReverseComplement returns the reverse complement of a nucleotide sequence.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	comp, err := s.Complement()
	if err != nil {
		return nil, err
	}
	return comp.Reverse(), nil
}

// Transcribe converts a DNA sequence to RNA (T becomes U).
func (s *Sequence) Transcribe() (*Sequence, error) {
	var target *alphabet.Alphabet
	switch s.alpha {
	case alphabet.DNA:
		target = alphabet.RNA
	case alphabet.AmbiguousDNA:
		target = alphabet.AmbiguousRNA
	default:
		return nil, fmt.Errorf("can only transcribe DNA, have %s", s.alpha.Name())
	}
	return &Sequence{
		alpha:       target,
		symbols:     strings.ReplaceAll(s.symbols, "T", "U"),
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// GCContent returns the proportion of G and C symbols.
func (s *Sequence) GCContent() float64 {
	if len(s.symbols) == 0 {
		return 0.0
	}
	gc := 0
	for i := 0; i < len(s.symbols); i++ {
		if s.symbols[i] == 'G' || s.symbols[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s.symbols))
}

// SymbolCounts returns the number of occurrences of each symbol.
func (s *Sequence) SymbolCounts() map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(s.symbols); i++ {
		counts[s.symbols[i]]++
	}
	return counts
}

// ToFASTA renders the sequence in FASTA format with 80-column wrapping.
func (s *Sequence) ToFASTA() string {
	var sb strings.Builder
	if s.ID != "" {
		sb.WriteByte('>')
		sb.WriteString(s.ID)
		if s.Description != "" {
			sb.WriteByte(' ')
			sb.WriteString(s.Description)
		}
	} else {
		sb.WriteString(">sequence")
	}
	sb.WriteByte('\n')
	for i := 0; i < len(s.symbols); i += 80 {
		end := i + 80
		if end > len(s.symbols) {
			end = len(s.symbols)
		}
		sb.WriteString(s.symbols[i:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.symbols)
	}
	return s.symbols
}
