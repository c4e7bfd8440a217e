// Package alignkit provides a high-level API for pairwise sequence
// alignment and pattern search.
//
// Example usage:
//
//	seq1, err := alignkit.NewSequence("ACTGAAGGATATTA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := alignkit.Align(seq1, seq2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(results[0].Format())
package alignkit

import (
	"context"

	"github.com/bioseq/alignkit/internal/align"
	"github.com/bioseq/alignkit/internal/alphabet"
	"github.com/bioseq/alignkit/internal/search"
	"github.com/bioseq/alignkit/internal/sequence"
	"github.com/bioseq/alignkit/internal/simmat"
	"github.com/bioseq/alignkit/internal/stats"
)

// Version of the library.
const Version = "0.2.0"

// Re-export types for convenience
type (
	Sequence         = sequence.Sequence
	Alphabet         = alphabet.Alphabet
	Matrix           = simmat.Matrix
	Params           = align.Params
	Mode             = align.Mode
	Result           = align.Result
	Hits             = search.Hits
	SearchOptions    = search.Options
	SequenceStats    = stats.SequenceStats
	SequenceSetStats = stats.SequenceSetStats
)

// Alignment modes
const (
	Global = align.Global
	Local  = align.Local
)

// Info returns a version banner.
func Info() string {
	return "alignkit " + Version
}

// NewSequence creates a sequence over the smallest registered alphabet
// covering the data.
func NewSequence(data string) (*Sequence, error) {
	return sequence.NewInferred(data)
}

// NewSequenceOver creates a sequence validated against a named alphabet.
func NewSequenceOver(alphabetName, data string) (*Sequence, error) {
	a, err := alphabet.ByName(alphabetName)
	if err != nil {
		return nil, err
	}
	return sequence.New(a, data)
}

// AlphabetByName resolves a registered alphabet.
func AlphabetByName(name string) (*Alphabet, error) {
	return alphabet.ByName(name)
}

// MatrixByName resolves a standard similarity matrix.
func MatrixByName(name string) (*Matrix, error) {
	return simmat.ByName(name)
}

// DefaultParams returns the standard nucleotide alignment parameters.
func DefaultParams() *Params {
	return align.DefaultDNA()
}

// Align computes the optimal global alignment under default nucleotide
// parameters.
func Align(a, b *Sequence) ([]*Result, error) {
	return align.Align(a, b, align.DefaultDNA())
}

// AlignLocal computes the optimal local alignment under default nucleotide
// parameters.
func AlignLocal(a, b *Sequence) ([]*Result, error) {
	p := align.DefaultDNA()
	p.Mode = align.Local
	return align.Align(a, b, p)
}

// AlignWith computes alignments under explicit parameters.
func AlignWith(a, b *Sequence, p *Params) ([]*Result, error) {
	return align.Align(a, b, p)
}

// AlignContext is AlignWith with cooperative cancellation.
func AlignContext(ctx context.Context, a, b *Sequence, p *Params) ([]*Result, error) {
	return align.AlignContext(ctx, a, b, p)
}

// Score computes only the alignment score, in linear space.
func Score(a, b *Sequence, p *Params) (int, error) {
	return align.Score(a, b, p)
}

// Scan finds pattern occurrences with a single-pass scan.
func Scan(seq *Sequence, pattern string, opts *SearchOptions) (*Hits, error) {
	return search.Scan(seq, pattern, opts)
}

// Lookup finds pattern occurrences through the sequence's cached substring
// index, building it on first use.
func Lookup(seq *Sequence, pattern string, opts *SearchOptions) (*Hits, error) {
	return search.Lookup(seq, pattern, opts)
}

// Stats summarizes a single sequence.
func Stats(seq *Sequence) *SequenceStats {
	return stats.FromSequence(seq)
}

// SetStats summarizes a collection of sequences.
func SetStats(sequences []*Sequence) (*SequenceSetStats, error) {
	return stats.FromSequences(sequences)
}
