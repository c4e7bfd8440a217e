package alignkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequence(t *testing.T) {
	seq, err := NewSequence("ACGTACGT")
	require.NoError(t, err)
	assert.Equal(t, 8, seq.Len())
	assert.Equal(t, "dna", seq.Alphabet().Name())

	_, err = NewSequence("not a sequence!")
	assert.Error(t, err)
}

func TestNewSequenceOver(t *testing.T) {
	seq, err := NewSequenceOver("ambiguous-dna", "ACGTN")
	require.NoError(t, err)
	assert.Equal(t, "ambiguous-dna", seq.Alphabet().Name())

	_, err = NewSequenceOver("dna", "ACGTN")
	assert.Error(t, err)

	_, err = NewSequenceOver("klingon", "ACGT")
	assert.Error(t, err)
}

func TestAlphabetByName(t *testing.T) {
	a, err := AlphabetByName("protein")
	require.NoError(t, err)
	assert.Equal(t, "protein", a.Name())

	_, err = AlphabetByName("bogus")
	assert.Error(t, err)
}

func TestMatrixByName(t *testing.T) {
	m, err := MatrixByName("blosum62")
	require.NoError(t, err)
	assert.Equal(t, "blosum62", m.Name())

	_, err = MatrixByName("pam250")
	assert.Error(t, err)
}

func TestAlignDefaults(t *testing.T) {
	a, err := NewSequence("ACTGAAGGATATTA")
	require.NoError(t, err)
	b, err := NewSequence("ACTGTCCTAGATATTA")
	require.NoError(t, err)

	results, err := Align(a, b)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 44, r.Score)
	assert.Equal(t, "ACTG----AAGGATATTA", r.AlignedA)
	assert.Equal(t, "ACTGTCCTA--GATATTA", r.AlignedB)

	score, err := Score(a, b, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, r.Score, score)
}

func TestAlignLocal(t *testing.T) {
	a, err := NewSequence("TTACGTTT")
	require.NoError(t, err)
	b, err := NewSequence("GGACGTGG")
	require.NoError(t, err)

	results, err := AlignLocal(a, b)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 20, results[0].Score)
	assert.Equal(t, "ACGT", results[0].AlignedA)
	assert.Equal(t, Local, results[0].Mode)
}

func TestAlignWith(t *testing.T) {
	a, _ := NewSequence("MKLV")
	b, _ := NewSequence("MKLV")

	p := DefaultParams()
	m, err := MatrixByName("blosum62")
	require.NoError(t, err)
	p.Matrix = m
	p.GapOpen = -10

	results, err := AlignWith(a, b, p)
	require.NoError(t, err)
	assert.Equal(t, 18, results[0].Score)
}

func TestScanAndLookup(t *testing.T) {
	seq, err := NewSequence("AGCTAGGTAGCTCAAAAAAGGG")
	require.NoError(t, err)

	opts := &SearchOptions{Wildcard: 'N'}
	scanned, err := Scan(seq, "GCTCANNNNNGGG", opts)
	require.NoError(t, err)
	indexed, err := Lookup(seq, "GCTCANNNNNGGG", opts)
	require.NoError(t, err)

	assert.Equal(t, []int{9}, scanned.Collect())
	assert.Equal(t, []int{9}, indexed.Collect())
}

func TestStats(t *testing.T) {
	seq, err := NewSequence("ACGCGT")
	require.NoError(t, err)

	st := Stats(seq)
	assert.Equal(t, 6, st.Length)
	assert.InDelta(t, 4.0/6.0, st.GCContent, 1e-9)

	set, err := SetStats([]*Sequence{seq, seq})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Count)
	assert.Equal(t, 12, set.TotalSymbols)
}

func TestInfo(t *testing.T) {
	assert.Contains(t, Info(), Version)
}
