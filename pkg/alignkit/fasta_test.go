package alignkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTA(t *testing.T) {
	t.Run("two records", func(t *testing.T) {
		input := `>seq1 first record
ACGTACGT
>seq2
GGCC
TTAA
`
		seqs, err := ParseFASTA(strings.NewReader(input), nil)
		require.NoError(t, err)
		require.Len(t, seqs, 2)

		assert.Equal(t, "seq1", seqs[0].ID)
		assert.Equal(t, "first record", seqs[0].Description)
		assert.Equal(t, "ACGTACGT", seqs[0].Symbols())

		assert.Equal(t, "seq2", seqs[1].ID)
		assert.Empty(t, seqs[1].Description)
		assert.Equal(t, "GGCCTTAA", seqs[1].Symbols())
	})

	t.Run("alphabet inferred per record", func(t *testing.T) {
		input := ">dna\nACGT\n>prot\nMKLVHE\n"
		seqs, err := ParseFASTA(strings.NewReader(input), nil)
		require.NoError(t, err)
		require.Len(t, seqs, 2)
		assert.Equal(t, "dna", seqs[0].Alphabet().Name())
		assert.Equal(t, "protein", seqs[1].Alphabet().Name())
	})

	t.Run("explicit alphabet", func(t *testing.T) {
		a, err := AlphabetByName("ambiguous-dna")
		require.NoError(t, err)

		seqs, err := ParseFASTA(strings.NewReader(">s\nACGT\n"), a)
		require.NoError(t, err)
		assert.Equal(t, "ambiguous-dna", seqs[0].Alphabet().Name())
	})

	t.Run("explicit alphabet rejects bad data", func(t *testing.T) {
		a, err := AlphabetByName("dna")
		require.NoError(t, err)

		_, err = ParseFASTA(strings.NewReader(">s\nACGTN\n"), a)
		assert.Error(t, err)
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		input := "\n>s\n\nACGT\n\n"
		seqs, err := ParseFASTA(strings.NewReader(input), nil)
		require.NoError(t, err)
		require.Len(t, seqs, 1)
		assert.Equal(t, "ACGT", seqs[0].Symbols())
	})

	t.Run("empty input", func(t *testing.T) {
		seqs, err := ParseFASTA(strings.NewReader(""), nil)
		require.NoError(t, err)
		assert.Empty(t, seqs)
	})
}

func TestFASTARoundTrip(t *testing.T) {
	seq, err := NewSequence(strings.Repeat("ACGTTGCAAC", 12))
	require.NoError(t, err)
	seq.ID = "round"
	seq.Description = "trip"

	parsed, err := ParseFASTA(strings.NewReader(seq.ToFASTA()), nil)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, seq.ID, parsed[0].ID)
	assert.Equal(t, seq.Description, parsed[0].Description)
	assert.Equal(t, seq.Symbols(), parsed[0].Symbols())
}
