// Package simmat provides symbol-pair similarity matrices for alignment
// scoring.
//
// A Matrix is total over its declared alphabet, ambiguity codes included.
// Ambiguous symbols score by the best-case policy: the score of an ambiguous
// pair is the maximum score over every pair of base symbols the two operands
// may represent. The policy is fixed at construction and applies to every
// derived entry.
package simmat

import (
	"fmt"

	"github.com/bioseq/alignkit/internal/alphabet"
)

// Matrix is a square score table indexed by symbol pairs from one alphabet.
type Matrix struct {
	name      string
	alpha     *alphabet.Alphabet
	idx       [256]int16
	table     [][]int
	minScore  int
	symmetric bool
}

// New builds a matrix over the given alphabet from an explicit score table.
// symbols names the row/column order of table. The table must be square,
// must match the symbol count, and must cover every unambiguous symbol of
// the alphabet. Entries for ambiguity codes not present in the table are
// derived by the best-case policy.
func New(name string, a *alphabet.Alphabet, symbols string, table [][]int) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("matrix %s: alphabet must not be nil", name)
	}
	if len(table) != len(symbols) {
		return nil, fmt.Errorf("matrix %s: %d symbols but %d table rows", name, len(symbols), len(table))
	}
	for i, row := range table {
		if len(row) != len(symbols) {
			return nil, fmt.Errorf("matrix %s: table is not square, row %d has %d entries", name, i, len(row))
		}
	}

	var given [256]int16
	for i := range given {
		given[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		sym := symbols[i]
		if !a.Contains(sym) {
			return nil, fmt.Errorf("matrix %s: symbol '%c' is not in alphabet %s", name, sym, a.Name())
		}
		if given[sym] >= 0 {
			return nil, fmt.Errorf("matrix %s: duplicate symbol '%c'", name, sym)
		}
		given[sym] = int16(i)
	}
	for _, sym := range a.Symbols() {
		if !a.IsAmbiguous(sym) && given[sym] < 0 {
			return nil, fmt.Errorf("matrix %s: table omits symbol '%c' of alphabet %s", name, sym, a.Name())
		}
	}

	m := &Matrix{name: name, alpha: a}
	for i := range m.idx {
		m.idx[i] = -1
	}
	full := a.Symbols()
	m.table = make([][]int, len(full))
	for i, sym := range full {
		m.idx[sym] = int16(i)
		m.table[i] = make([]int, len(full))
	}
	for i, x := range full {
		for j, y := range full {
			m.table[i][j] = derive(a, &given, table, x, y)
		}
	}

	m.minScore = m.table[0][0]
	m.symmetric = true
	for i := range m.table {
		for j := range m.table[i] {
			if m.table[i][j] < m.minScore {
				m.minScore = m.table[i][j]
			}
			if m.table[i][j] != m.table[j][i] {
				m.symmetric = false
			}
		}
	}
	return m, nil
}

// derive resolves the score for a symbol pair: the explicit table entry when
// both symbols were given, otherwise the best case over the base-symbol
// expansions of the two operands.
func derive(a *alphabet.Alphabet, given *[256]int16, table [][]int, x, y byte) int {
	if gi, gj := given[x], given[y]; gi >= 0 && gj >= 0 {
		return table[gi][gj]
	}
	best := 0
	first := true
	for _, bx := range a.BasesOf(x) {
		for _, by := range a.BasesOf(y) {
			gi, gj := given[bx], given[by]
			if gi < 0 || gj < 0 {
				continue
			}
			if s := table[gi][gj]; first || s > best {
				best = s
				first = false
			}
		}
	}
	return best
}

// Uniform builds a match/mismatch matrix over the given alphabet. Ambiguity
// codes score by the best-case policy, so any overlap between two expansions
// scores as a match.
func Uniform(name string, a *alphabet.Alphabet, match, mismatch int) (*Matrix, error) {
	var syms []byte
	for _, sym := range a.Symbols() {
		if !a.IsAmbiguous(sym) {
			syms = append(syms, sym)
		}
	}
	table := make([][]int, len(syms))
	for i := range syms {
		table[i] = make([]int, len(syms))
		for j := range syms {
			if i == j {
				table[i][j] = match
			} else {
				table[i][j] = mismatch
			}
		}
	}
	return New(name, a, string(syms), table)
}

// Name returns the matrix's name.
func (m *Matrix) Name() string {
	return m.name
}

// Alphabet returns the alphabet the matrix is defined over.
func (m *Matrix) Alphabet() *alphabet.Alphabet {
	return m.alpha
}

// Symmetric reports whether score(a,b) == score(b,a) for all pairs.
func (m *Matrix) Symmetric() bool {
	return m.symmetric
}

// Score returns the score for a symbol pair. The matrix is total over its
// alphabet; a symbol outside the alphabet scores as the matrix minimum.
// Callers that need strict validation use Compatible first.
func (m *Matrix) Score(a, b byte) int {
	i, j := m.idx[a], m.idx[b]
	if i < 0 || j < 0 {
		return m.minScore
	}
	return m.table[i][j]
}

// Compatible reports whether every symbol of the given alphabet has a score
// in this matrix.
func (m *Matrix) Compatible(a *alphabet.Alphabet) bool {
	for _, sym := range a.Symbols() {
		if m.idx[sym] < 0 {
			return false
		}
	}
	return true
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%s over %s)", m.name, m.alpha.Name())
}
