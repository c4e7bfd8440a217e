package simmat

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bioseq/alignkit/internal/alphabet"
)

// Standard named matrices are built once on first use and shared; matrices
// are read-only after construction.
var (
	buildOnce  sync.Once
	nucleotide *Matrix
	rna        *Matrix
	blosum62   *Matrix
)

func buildNamed() {
	var err error
	if nucleotide, err = Uniform("nucleotide", alphabet.AmbiguousDNA, 5, -4); err != nil {
		panic(err)
	}
	if rna, err = Uniform("nucleotide-rna", alphabet.AmbiguousRNA, 5, -4); err != nil {
		panic(err)
	}
	syms, table, err := parseScoreTable(blosum62Text)
	if err != nil {
		panic(err)
	}
	if blosum62, err = New("blosum62", alphabet.AmbiguousProtein, syms, table); err != nil {
		panic(err)
	}
}

// Nucleotide returns the standard DNA matrix over the ambiguous DNA
// alphabet: +5 match, -4 mismatch, ambiguity codes by the best-case policy.
func Nucleotide() *Matrix {
	buildOnce.Do(buildNamed)
	return nucleotide
}

// NucleotideRNA returns the RNA counterpart of Nucleotide.
func NucleotideRNA() *Matrix {
	buildOnce.Do(buildNamed)
	return rna
}

// Blosum62 returns the BLOSUM62 protein matrix over the ambiguous protein
// alphabet.
func Blosum62() *Matrix {
	buildOnce.Do(buildNamed)
	return blosum62
}

// ByName resolves a standard matrix by name.
func ByName(name string) (*Matrix, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nucleotide", "dna":
		return Nucleotide(), nil
	case "nucleotide-rna", "rna":
		return NucleotideRNA(), nil
	case "blosum62":
		return Blosum62(), nil
	}
	return nil, fmt.Errorf("unknown similarity matrix %q", name)
}

// parseScoreTable reads a whitespace-formatted score table: a header line of
// symbols, then one row per symbol with the symbol as the first field.
func parseScoreTable(text string) (string, [][]int, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	header := strings.Fields(lines[0])
	var syms []byte
	for _, f := range header {
		if len(f) != 1 {
			return "", nil, fmt.Errorf("score table: bad header field %q", f)
		}
		syms = append(syms, f[0])
	}
	var table [][]int
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != len(syms)+1 {
			return "", nil, fmt.Errorf("score table: row %q has %d fields, want %d",
				fields[0], len(fields)-1, len(syms))
		}
		row := make([]int, len(syms))
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return "", nil, fmt.Errorf("score table: %v", err)
			}
			row[i] = v
		}
		table = append(table, row)
	}
	return string(syms), table, nil
}

// BLOSUM62 substitution scores, 23 symbols (stop codon column dropped).
const blosum62Text = `
   A  R  N  D  C  Q  E  G  H  I  L  K  M  F  P  S  T  W  Y  V  B  Z  X
A  4 -1 -2 -2  0 -1 -1  0 -2 -1 -1 -1 -1 -2 -1  1  0 -3 -2  0 -2 -1  0
R -1  5  0 -2 -3  1  0 -2  0 -3 -2  2 -1 -3 -2 -1 -1 -3 -2 -3 -1  0 -1
N -2  0  6  1 -3  0  0  0  1 -3 -3  0 -2 -3 -2  1  0 -4 -2 -3  3  0 -1
D -2 -2  1  6 -3  0  2 -1 -1 -3 -4 -1 -3 -3 -1  0 -1 -4 -3 -3  4  1 -1
C  0 -3 -3 -3  9 -3 -4 -3 -3 -1 -1 -3 -1 -2 -3 -1 -1 -2 -2 -1 -3 -3 -2
Q -1  1  0  0 -3  5  2 -2  0 -3 -2  1  0 -3 -1  0 -1 -2 -1 -2  0  3 -1
E -1  0  0  2 -4  2  5 -2  0 -3 -3  1 -2 -3 -1  0 -1 -3 -2 -2  1  4 -1
G  0 -2  0 -1 -3 -2 -2  6 -2 -4 -4 -2 -3 -3 -2  0 -2 -2 -3 -3 -1 -2 -1
H -2  0  1 -1 -3  0  0 -2  8 -3 -3 -1 -2 -1 -2 -1 -2 -2  2 -3  0  0 -1
I -1 -3 -3 -3 -1 -3 -3 -4 -3  4  2 -3  1  0 -3 -2 -1 -3 -1  3 -3 -3 -1
L -1 -2 -3 -4 -1 -2 -3 -4 -3  2  4 -2  2  0 -3 -2 -1 -2 -1  1 -4 -3 -1
K -1  2  0 -1 -3  1  1 -2 -1 -3 -2  5 -1 -3 -1  0 -1 -3 -2 -2  0  1 -1
M -1 -1 -2 -3 -1  0 -2 -3 -2  1  2 -1  5  0 -2 -1 -1 -1 -1  1 -3 -1 -1
F -2 -3 -3 -3 -2 -3 -3 -3 -1  0  0 -3  0  6 -4 -2 -2  1  3 -1 -3 -3 -1
P -1 -2 -2 -1 -3 -1 -1 -2 -2 -3 -3 -1 -2 -4  7 -1 -1 -4 -3 -2 -2 -1 -2
S  1 -1  1  0 -1  0  0  0 -1 -2 -2  0 -1 -2 -1  4  1 -3 -2 -2  0  0  0
T  0 -1  0 -1 -1 -1 -1 -2 -2 -1 -1 -1 -1 -2 -1  1  5 -2 -2  0 -1 -1  0
W -3 -3 -4 -4 -2 -2 -3 -2 -2 -3 -2 -3 -1  1 -4 -3 -2 11  2 -3 -4 -3 -2
Y -2 -2 -2 -3 -2 -1 -2 -3  2 -1 -1 -2 -1  3 -3 -2 -2  2  7 -1 -3 -2 -1
V  0 -3 -3 -3 -1 -2 -2 -3 -3  3  1 -2  1 -1 -2 -2  0 -3 -1  4 -3 -2 -1
B -2 -1  3  4 -3  0  1 -1  0 -3 -4  0 -3 -3 -2  0 -1 -4 -3 -3  4  1 -1
Z -1  0  0  1 -3  3  4 -2  0 -3 -3  1 -1 -3 -1  0 -1 -3 -2 -2  1  4 -1
X  0 -1 -1 -1 -2 -1 -1 -1 -1 -1 -1 -1 -1 -1 -2  0  0 -2 -1 -1 -1 -1 -1
`
