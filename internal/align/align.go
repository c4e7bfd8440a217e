// Package align computes optimal pairwise alignments between sequences
// under a similarity matrix and an affine gap model.
//
// A gap run of length k costs GapOpen + (k-1)*GapExtend, both expressed as
// costs (non-positive values). The dynamic program keeps three layers per
// cell (substitution, gap in B, gap in A) and retains full matrices so the
// traceback can enumerate tied optimal paths; callers that only need the
// score use the two-row variants in score.go.
package align

import (
	"context"
	"fmt"

	"github.com/bioseq/alignkit/internal/sequence"
	"github.com/bioseq/alignkit/internal/simmat"
)

// Mode selects the alignment strategy.
type Mode int

const (
	// Global forces use of the full length of both sequences.
	Global Mode = iota
	// Local aligns the highest-scoring contiguous subregions only.
	Local
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	}
	return "unknown"
}

// ParseMode resolves a mode by name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	}
	return Global, &InvalidParametersError{Reason: fmt.Sprintf("unknown alignment mode %q", name)}
}

// Params configures an alignment run.
type Params struct {
	// Matrix scores symbol pairs. Required.
	Matrix *simmat.Matrix

	// GapOpen is the cost of the first symbol of a gap run, <= 0.
	GapOpen int

	// GapExtend is the cost of each further gap symbol, <= 0 and not more
	// severe than GapOpen.
	GapExtend int

	Mode Mode

	// MaxAlignments bounds how many tied optimal alignments are reported.
	MaxAlignments int
}

// DefaultDNA returns alignment parameters for nucleotide sequences: the
// standard nucleotide matrix with gap open -6 and gap extension -1.
func DefaultDNA() *Params {
	return &Params{
		Matrix:        simmat.Nucleotide(),
		GapOpen:       -6,
		GapExtend:     -1,
		Mode:          Global,
		MaxAlignments: 1,
	}
}

// DefaultProtein returns BLOSUM62 parameters with gap open -10 and gap
// extension -1.
func DefaultProtein() *Params {
	return &Params{
		Matrix:        simmat.Blosum62(),
		GapOpen:       -10,
		GapExtend:     -1,
		Mode:          Global,
		MaxAlignments: 1,
	}
}

func (p *Params) validate() error {
	if p.Matrix == nil {
		return &InvalidParametersError{Reason: "similarity matrix is required"}
	}
	if p.GapOpen > 0 {
		return &InvalidParametersError{Reason: fmt.Sprintf("gap open cost must be <= 0, have %d", p.GapOpen)}
	}
	if p.GapExtend > 0 {
		return &InvalidParametersError{Reason: fmt.Sprintf("gap extension cost must be <= 0, have %d", p.GapExtend)}
	}
	if p.GapExtend < p.GapOpen {
		return &InvalidParametersError{Reason: fmt.Sprintf(
			"gap extension cost %d must not be more severe than gap open cost %d", p.GapExtend, p.GapOpen)}
	}
	if p.MaxAlignments < 1 {
		return &InvalidParametersError{Reason: fmt.Sprintf("max alignments must be positive, have %d", p.MaxAlignments)}
	}
	return nil
}

// checkInputs re-validates sequences against the parameters. The aligner
// always runs these checks itself so its contract holds under caller misuse.
func checkInputs(a, b *sequence.Sequence, p *Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	if a == nil || a.Len() == 0 {
		return &EmptySequenceError{Which: "first"}
	}
	if b == nil || b.Len() == 0 {
		return &EmptySequenceError{Which: "second"}
	}
	if !p.Matrix.Compatible(a.Alphabet()) {
		return &IncompatibleAlphabetError{Alphabet: a.Alphabet().Name(), Matrix: p.Matrix.Name()}
	}
	if !p.Matrix.Compatible(b.Alphabet()) {
		return &IncompatibleAlphabetError{Alphabet: b.Alphabet().Name(), Matrix: p.Matrix.Name()}
	}
	return nil
}

// Align computes the optimal alignment(s) between a and b. Results share the
// optimal score and are enumerated in deterministic traceback order, capped
// at Params.MaxAlignments.
func Align(a, b *sequence.Sequence, p *Params) ([]*Result, error) {
	return AlignContext(context.Background(), a, b, p)
}

// AlignContext is Align with cooperative cancellation, checked between
// matrix rows.
func AlignContext(ctx context.Context, a, b *sequence.Sequence, p *Params) ([]*Result, error) {
	if err := checkInputs(a, b, p); err != nil {
		return nil, err
	}
	d, err := fill(ctx, a.Symbols(), b.Symbols(), p)
	if err != nil {
		return nil, err
	}
	return d.traceback(), nil
}

// Score computes only the alignment score in O(min) space.
func Score(a, b *sequence.Sequence, p *Params) (int, error) {
	return ScoreContext(context.Background(), a, b, p)
}
