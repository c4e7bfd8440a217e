package align

import (
	"context"
	"strings"
	"testing"

	"github.com/bioseq/alignkit/internal/alphabet"
	"github.com/bioseq/alignkit/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, data string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.NewInferred(data)
	require.NoError(t, err)
	return seq
}

func TestGlobalAlignment(t *testing.T) {
	t.Run("identical sequences", func(t *testing.T) {
		a := mustSeq(t, "ACGT")
		b := mustSeq(t, "ACGT")

		results, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 20, r.Score)
		assert.Equal(t, "ACGT", r.AlignedA)
		assert.Equal(t, "ACGT", r.AlignedB)
		assert.Equal(t, 1.0, r.Identity)
		assert.Equal(t, 0, r.TotalGaps())
		assert.Equal(t, "4M", r.ToCIGAR())
	})

	t.Run("single mismatch", func(t *testing.T) {
		a := mustSeq(t, "ACGT")
		b := mustSeq(t, "ACCT")

		results, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 11, r.Score) // 3*5 - 4
		assert.Equal(t, 3, r.MatchCount())
		assert.Equal(t, 1, r.MismatchCount())
		assert.Equal(t, "2M1X1M", r.ToCIGAR())
	})

	t.Run("gap run costs open plus extensions", func(t *testing.T) {
		a := mustSeq(t, "AGGGA")
		b := mustSeq(t, "AA")

		results, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 2, r.Score) // 5 - (6+1+1) + 5
		assert.Equal(t, "AGGGA", r.AlignedA)
		assert.Equal(t, "A---A", r.AlignedB)
		assert.Equal(t, 1, r.GapOpenings())
	})

	t.Run("interior deletion", func(t *testing.T) {
		a := mustSeq(t, "ACGT")
		b := mustSeq(t, "AT")

		results, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 3, r.Score) // 5 - (6+1) + 5
		assert.Equal(t, "A--T", r.AlignedB)
	})

	t.Run("score may be negative", func(t *testing.T) {
		a := mustSeq(t, "AAAA")
		b := mustSeq(t, "TTTT")

		score, err := Score(a, b, DefaultDNA())
		require.NoError(t, err)
		assert.Equal(t, -16, score)
	})

	t.Run("full span offsets", func(t *testing.T) {
		a := mustSeq(t, "ACGTAC")
		b := mustSeq(t, "ACTAC")

		results, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		r := results[0]
		assert.Equal(t, 0, r.StartA)
		assert.Equal(t, a.Len(), r.EndA)
		assert.Equal(t, 0, r.StartB)
		assert.Equal(t, b.Len(), r.EndB)
	})
}

// The affine gap model consolidates the two insertions next to the long
// deletion: a single 4-gap plus a single 2-gap beats any arrangement with
// more gap openings.
func TestGlobalAffineGapPlacement(t *testing.T) {
	a := mustSeq(t, "ACTGAAGGATATTA")
	b := mustSeq(t, "ACTGTCCTAGATATTA")

	results, err := Align(a, b, DefaultDNA())
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 44, r.Score) // 12*5 - (6+3*1) - (6+1)
	assert.Equal(t, "ACTG----AAGGATATTA", r.AlignedA)
	assert.Equal(t, "ACTGTCCTA--GATATTA", r.AlignedB)
	assert.Equal(t, 12, r.MatchCount())
	assert.Equal(t, 0, r.MismatchCount())
	assert.Equal(t, 6, r.TotalGaps())
	assert.Equal(t, 2, r.GapOpenings())
	assert.Equal(t, "4M4I1M2D7M", r.ToCIGAR())
	assert.InDelta(t, 12.0/18.0, r.Identity, 1e-9)

	score, err := Score(a, b, DefaultDNA())
	require.NoError(t, err)
	assert.Equal(t, r.Score, score)
}

func TestGlobalTiedAlignments(t *testing.T) {
	a := mustSeq(t, "AT")
	b := mustSeq(t, "AAT")

	p := DefaultDNA()
	p.MaxAlignments = 4

	results, err := Align(a, b, p)
	require.NoError(t, err)
	require.Len(t, results, 2)

	var alignedA []string
	for _, r := range results {
		assert.Equal(t, 4, r.Score) // 2*5 - 6
		assert.Equal(t, "AAT", r.AlignedB)
		alignedA = append(alignedA, r.AlignedA)
	}
	assert.ElementsMatch(t, []string{"-AT", "A-T"}, alignedA)

	// Capped enumeration.
	p.MaxAlignments = 1
	results, err = Align(a, b, p)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Score)
}

func TestAlignmentDeterminism(t *testing.T) {
	a := mustSeq(t, "ACTGAAGGATATTA")
	b := mustSeq(t, "ACTGTCCTAGATATTA")

	first, err := Align(a, b, DefaultDNA())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Align(a, b, DefaultDNA())
		require.NoError(t, err)
		require.Len(t, again, len(first))
		assert.Equal(t, first[0].AlignedA, again[0].AlignedA)
		assert.Equal(t, first[0].AlignedB, again[0].AlignedB)
		assert.Equal(t, first[0].Score, again[0].Score)
	}
}

func TestScoreSwapSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "ACGT"},
		{"ACTGAAGGATATTA", "ACTGTCCTAGATATTA"},
		{"AGGGA", "AA"},
		{"TTACGTTT", "GGACGTGG"},
	}

	for _, mode := range []Mode{Global, Local} {
		p := DefaultDNA()
		p.Mode = mode
		for _, pair := range pairs {
			a, b := mustSeq(t, pair[0]), mustSeq(t, pair[1])
			ab, err := Score(a, b, p)
			require.NoError(t, err)
			ba, err := Score(b, a, p)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "%s mode, %s vs %s", mode, pair[0], pair[1])
		}
	}
}

func TestScoreMatchesAlign(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "ACCT"},
		{"ACGT", "AT"},
		{"ACTGAAGGATATTA", "ACTGTCCTAGATATTA"},
		{"TTACGTTT", "GGACGTGG"},
		{"AAAA", "TTTT"},
	}

	for _, mode := range []Mode{Global, Local} {
		p := DefaultDNA()
		p.Mode = mode
		for _, pair := range pairs {
			a, b := mustSeq(t, pair[0]), mustSeq(t, pair[1])

			results, err := Align(a, b, p)
			require.NoError(t, err)
			score, err := Score(a, b, p)
			require.NoError(t, err)
			assert.Equal(t, results[0].Score, score, "%s mode, %s vs %s", mode, pair[0], pair[1])
		}
	}
}

func TestLocalAlignment(t *testing.T) {
	t.Run("embedded match region", func(t *testing.T) {
		a := mustSeq(t, "TTACGTTT")
		b := mustSeq(t, "GGACGTGG")

		p := DefaultDNA()
		p.Mode = Local
		results, err := Align(a, b, p)
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 20, r.Score)
		assert.Equal(t, "ACGT", r.AlignedA)
		assert.Equal(t, "ACGT", r.AlignedB)
		assert.Equal(t, 2, r.StartA)
		assert.Equal(t, 6, r.EndA)
		assert.Equal(t, 2, r.StartB)
		assert.Equal(t, 6, r.EndB)
		assert.Equal(t, Local, r.Mode)
	})

	t.Run("nothing scores above zero", func(t *testing.T) {
		a := mustSeq(t, "AAAA")
		b := mustSeq(t, "TTTT")

		p := DefaultDNA()
		p.Mode = Local
		results, err := Align(a, b, p)
		require.NoError(t, err)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 0, r.Score)
		assert.Empty(t, r.AlignedA)
		assert.Empty(t, r.AlignedB)
	})

	t.Run("score is never negative", func(t *testing.T) {
		p := DefaultDNA()
		p.Mode = Local
		pairs := [][2]string{
			{"A", "T"},
			{"ACAC", "GTGT"},
			{"ACTG", "CATG"},
		}
		for _, pair := range pairs {
			a, b := mustSeq(t, pair[0]), mustSeq(t, pair[1])
			score, err := Score(a, b, p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0)
		}
	})
}

func TestProteinAlignment(t *testing.T) {
	a := mustSeq(t, "MKLV")
	b := mustSeq(t, "MKLV")
	require.Equal(t, "protein", a.Alphabet().Name())

	results, err := Align(a, b, DefaultProtein())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 18, results[0].Score) // M:5 K:5 L:4 V:4
	assert.Equal(t, 1.0, results[0].Identity)
}

func TestAmbiguityScoring(t *testing.T) {
	// N scores as a best-case match against any base.
	a := mustSeq(t, "ACGTN")
	b := mustSeq(t, "ACGTA")
	require.Equal(t, "ambiguous-dna", a.Alphabet().Name())

	score, err := Score(a, b, DefaultDNA())
	require.NoError(t, err)
	assert.Equal(t, 25, score)
}

func TestInputValidation(t *testing.T) {
	good := mustSeq(t, "ACGT")
	empty, err := sequence.New(alphabet.DNA, "")
	require.NoError(t, err)

	t.Run("empty first sequence", func(t *testing.T) {
		_, err := Align(empty, good, DefaultDNA())
		var eerr *EmptySequenceError
		require.ErrorAs(t, err, &eerr)
		assert.Equal(t, "first", eerr.Which)
	})

	t.Run("empty second sequence", func(t *testing.T) {
		_, err := Align(good, empty, DefaultDNA())
		var eerr *EmptySequenceError
		require.ErrorAs(t, err, &eerr)
		assert.Equal(t, "second", eerr.Which)
	})

	t.Run("nil sequence", func(t *testing.T) {
		_, err := Align(nil, good, DefaultDNA())
		var eerr *EmptySequenceError
		assert.ErrorAs(t, err, &eerr)
	})

	t.Run("incompatible alphabet", func(t *testing.T) {
		protein := mustSeq(t, "MKLVHE")
		_, err := Align(protein, good, DefaultDNA())
		var ierr *IncompatibleAlphabetError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "protein", ierr.Alphabet)
	})

	t.Run("score runs the same checks", func(t *testing.T) {
		_, err := Score(empty, good, DefaultDNA())
		var eerr *EmptySequenceError
		assert.ErrorAs(t, err, &eerr)
	})
}

func TestParamValidation(t *testing.T) {
	a := mustSeq(t, "ACGT")
	b := mustSeq(t, "ACGT")

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing matrix", func(p *Params) { p.Matrix = nil }},
		{"positive gap open", func(p *Params) { p.GapOpen = 2 }},
		{"positive gap extend", func(p *Params) { p.GapExtend = 1 }},
		{"extension more severe than open", func(p *Params) { p.GapOpen = -2; p.GapExtend = -3 }},
		{"zero max alignments", func(p *Params) { p.MaxAlignments = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultDNA()
			tt.mutate(p)
			_, err := Align(a, b, p)
			var perr *InvalidParametersError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("global")
	require.NoError(t, err)
	assert.Equal(t, Global, m)

	m, err = ParseMode("local")
	require.NoError(t, err)
	assert.Equal(t, Local, m)

	_, err = ParseMode("semi-global")
	assert.Error(t, err)
}

func TestCancellation(t *testing.T) {
	a := mustSeq(t, strings.Repeat("ACGT", 100))
	b := mustSeq(t, strings.Repeat("TGCA", 100))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AlignContext(ctx, a, b, DefaultDNA())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ScoreContext(ctx, a, b, DefaultDNA())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultFormat(t *testing.T) {
	a := mustSeq(t, "ACGT")
	b := mustSeq(t, "ACCT")

	results, err := Align(a, b, DefaultDNA())
	require.NoError(t, err)

	out := results[0].Format()
	assert.Contains(t, out, "ACGT")
	assert.Contains(t, out, "ACCT")
	assert.Contains(t, out, "||.|")
	assert.Contains(t, out, "Score: 11")
}

func benchSeq(b *testing.B, n int) *sequence.Sequence {
	b.Helper()
	seq, err := sequence.NewInferred(strings.Repeat("ACGTTGCAAC", n/10))
	if err != nil {
		b.Fatal(err)
	}
	return seq
}

func BenchmarkAlignGlobal1kb(b *testing.B) {
	x := benchSeq(b, 1000)
	y := benchSeq(b, 1000)
	p := DefaultDNA()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Align(x, y, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScoreGlobal1kb(b *testing.B) {
	x := benchSeq(b, 1000)
	y := benchSeq(b, 1000)
	p := DefaultDNA()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Score(x, y, p); err != nil {
			b.Fatal(err)
		}
	}
}
