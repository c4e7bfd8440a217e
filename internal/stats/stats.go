// Package stats provides statistical summaries for sequences.
package stats

import (
	"fmt"
	"sort"

	"github.com/bioseq/alignkit/internal/sequence"
)

// SequenceStats summarizes a single sequence.
type SequenceStats struct {
	Length       int
	Alphabet     string
	GCContent    float64
	SymbolCounts map[byte]int
	Ambiguous    int
}

// FromSequence calculates statistics for a sequence.
func FromSequence(seq *sequence.Sequence) *SequenceStats {
	ambiguous := 0
	counts := seq.SymbolCounts()
	for sym, n := range counts {
		if seq.Alphabet().IsAmbiguous(sym) {
			ambiguous += n
		}
	}
	return &SequenceStats{
		Length:       seq.Len(),
		Alphabet:     seq.Alphabet().Name(),
		GCContent:    seq.GCContent(),
		SymbolCounts: counts,
		Ambiguous:    ambiguous,
	}
}

func (s *SequenceStats) String() string {
	syms := make([]int, 0, len(s.SymbolCounts))
	for sym := range s.SymbolCounts {
		syms = append(syms, int(sym))
	}
	sort.Ints(syms)
	counts := ""
	for i, sym := range syms {
		if i > 0 {
			counts += ", "
		}
		counts += fmt.Sprintf("%c=%d", sym, s.SymbolCounts[byte(sym)])
	}
	return fmt.Sprintf(`SequenceStats {
  length: %d
  alphabet: %s
  GC content: %.1f%%
  counts: %s
  ambiguous: %d
}`, s.Length, s.Alphabet, s.GCContent*100, counts, s.Ambiguous)
}

// SequenceSetStats aggregates statistics over multiple sequences.
type SequenceSetStats struct {
	Count          int
	TotalSymbols   int
	MinLength      int
	MaxLength      int
	MeanLength     float64
	MedianLength   int
	MeanGCContent  float64
	N50            int
	TotalAmbiguous int
}

// FromSequences calculates statistics for a collection of sequences.
func FromSequences(sequences []*sequence.Sequence) (*SequenceSetStats, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(sequences)
	lengths := make([]int, count)
	total := 0
	for i, seq := range sequences {
		lengths[i] = seq.Len()
		total += seq.Len()
	}

	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)
	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		medianLen = sorted[mid]
	}

	gcSum := 0.0
	ambiguous := 0
	for _, seq := range sequences {
		gcSum += seq.GCContent()
		ambiguous += FromSequence(seq).Ambiguous
	}

	// N50: length at which half the symbols are in sequences at least that
	// long.
	desc := make([]int, count)
	copy(desc, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))
	half := total / 2
	running := 0
	n50 := desc[0]
	for _, l := range desc {
		running += l
		if running >= half {
			n50 = l
			break
		}
	}

	return &SequenceSetStats{
		Count:          count,
		TotalSymbols:   total,
		MinLength:      minLen,
		MaxLength:      maxLen,
		MeanLength:     float64(total) / float64(count),
		MedianLength:   medianLen,
		MeanGCContent:  gcSum / float64(count),
		N50:            n50,
		TotalAmbiguous: ambiguous,
	}, nil
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  count: %d
  total symbols: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean GC: %.1f%%
  N50: %d
  ambiguous symbols: %d
}`, s.Count, s.TotalSymbols, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent*100, s.N50, s.TotalAmbiguous)
}
