package simmat

import (
	"testing"

	"github.com/bioseq/alignkit/internal/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNucleotide(t *testing.T) {
	m := Nucleotide()

	t.Run("unambiguous pairs", func(t *testing.T) {
		assert.Equal(t, 5, m.Score('A', 'A'))
		assert.Equal(t, 5, m.Score('T', 'T'))
		assert.Equal(t, -4, m.Score('A', 'C'))
		assert.Equal(t, -4, m.Score('G', 'T'))
	})

	t.Run("ambiguity codes score best case", func(t *testing.T) {
		// N may be any base, so it can always match.
		assert.Equal(t, 5, m.Score('N', 'A'))
		assert.Equal(t, 5, m.Score('A', 'N'))
		assert.Equal(t, 5, m.Score('N', 'N'))

		// R (AG) overlaps A but not Y (CT).
		assert.Equal(t, 5, m.Score('R', 'A'))
		assert.Equal(t, 5, m.Score('R', 'G'))
		assert.Equal(t, -4, m.Score('R', 'C'))
		assert.Equal(t, -4, m.Score('R', 'Y'))
		assert.Equal(t, 5, m.Score('R', 'W')) // both may be A
	})

	t.Run("properties", func(t *testing.T) {
		assert.True(t, m.Symmetric())
		assert.True(t, m.Compatible(alphabet.DNA))
		assert.True(t, m.Compatible(alphabet.AmbiguousDNA))
		assert.False(t, m.Compatible(alphabet.Protein))
		assert.False(t, m.Compatible(alphabet.RNA))
	})

	t.Run("unknown symbol scores the minimum", func(t *testing.T) {
		assert.Equal(t, -4, m.Score('A', 'Z'))
		assert.Equal(t, -4, m.Score('U', 'U'))
	})
}

func TestNucleotideRNA(t *testing.T) {
	m := NucleotideRNA()
	assert.Equal(t, 5, m.Score('U', 'U'))
	assert.Equal(t, -4, m.Score('A', 'U'))
	assert.Equal(t, 5, m.Score('N', 'U'))
	assert.True(t, m.Compatible(alphabet.RNA))
	assert.False(t, m.Compatible(alphabet.DNA))
}

func TestBlosum62(t *testing.T) {
	m := Blosum62()

	tests := []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'C', 'C', 9},
		{'P', 'P', 7},
		{'E', 'Q', 2},
		{'A', 'R', -1},
		{'W', 'G', -2},
		{'I', 'V', 3},
		{'B', 'B', 4},
		{'Z', 'E', 4},
		{'X', 'A', 0},
		{'X', 'X', -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Score(tt.a, tt.b), "%c/%c", tt.a, tt.b)
		assert.Equal(t, tt.want, m.Score(tt.b, tt.a), "%c/%c", tt.b, tt.a)
	}

	assert.True(t, m.Symmetric())
	assert.True(t, m.Compatible(alphabet.Protein))
	assert.True(t, m.Compatible(alphabet.AmbiguousProtein))
	assert.False(t, m.Compatible(alphabet.DNA))
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    *Matrix
		wantErr bool
	}{
		{name: "nucleotide", want: Nucleotide()},
		{name: "dna", want: Nucleotide()},
		{name: "rna", want: NucleotideRNA()},
		{name: "blosum62", want: Blosum62()},
		{name: "BLOSUM62", want: Blosum62()},
		{name: "pam250", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, m)
		})
	}
}

func TestUniform(t *testing.T) {
	m, err := Uniform("test", alphabet.DNA, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Score('A', 'A'))
	assert.Equal(t, -1, m.Score('A', 'T'))
	assert.True(t, m.Symmetric())
}

func TestNewValidation(t *testing.T) {
	t.Run("nil alphabet", func(t *testing.T) {
		_, err := New("bad", nil, "AC", [][]int{{1, 0}, {0, 1}})
		assert.Error(t, err)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		_, err := New("bad", alphabet.DNA, "ACGT", [][]int{{1}})
		assert.Error(t, err)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := New("bad", alphabet.DNA, "AC", [][]int{{1, 0}, {0}})
		assert.Error(t, err)
	})

	t.Run("symbol outside alphabet", func(t *testing.T) {
		_, err := New("bad", alphabet.DNA, "AU", [][]int{{1, 0}, {0, 1}})
		assert.Error(t, err)
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		_, err := New("bad", alphabet.DNA, "AA", [][]int{{1, 0}, {0, 1}})
		assert.Error(t, err)
	})

	t.Run("missing unambiguous symbol", func(t *testing.T) {
		_, err := New("bad", alphabet.DNA, "ACG",
			[][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
		assert.Error(t, err)
	})
}

func TestAsymmetric(t *testing.T) {
	m, err := New("skew", alphabet.DNA, "ACGT", [][]int{
		{1, 0, 0, 0},
		{2, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)
	assert.False(t, m.Symmetric())
	assert.Equal(t, 2, m.Score('C', 'A'))
	assert.Equal(t, 0, m.Score('A', 'C'))
}
