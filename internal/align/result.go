package align

import (
	"fmt"
	"strings"
)

// Gap is the marker interleaved with sequence symbols in aligned output.
const Gap = byte('-')

// Result holds one optimal alignment: the two gapped subsequences, the
// score, the half-open offsets of the aligned regions in the original
// sequences, and the mode that produced it.
type Result struct {
	AlignedA string
	AlignedB string
	Score    int
	StartA   int
	EndA     int
	StartB   int
	EndB     int
	Mode     Mode
	Identity float64
}

func newResult(alignedA, alignedB string, score, startA, startB, endA, endB int, mode Mode) *Result {
	r := &Result{
		AlignedA: alignedA,
		AlignedB: alignedB,
		Score:    score,
		StartA:   startA,
		EndA:     endA,
		StartB:   startB,
		EndB:     endB,
		Mode:     mode,
	}
	r.Identity = r.identity()
	return r
}

func (r *Result) identity() float64 {
	if len(r.AlignedA) == 0 {
		return 0.0
	}
	return float64(r.MatchCount()) / float64(len(r.AlignedA))
}

// Length returns the alignment length, gaps included.
func (r *Result) Length() int {
	return len(r.AlignedA)
}

// MatchCount returns the number of identical aligned symbol pairs.
func (r *Result) MatchCount() int {
	count := 0
	for i := 0; i < len(r.AlignedA); i++ {
		if r.AlignedA[i] == r.AlignedB[i] && r.AlignedA[i] != Gap {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of differing aligned symbol pairs,
// gaps excluded.
func (r *Result) MismatchCount() int {
	count := 0
	for i := 0; i < len(r.AlignedA); i++ {
		if r.AlignedA[i] != r.AlignedB[i] && r.AlignedA[i] != Gap && r.AlignedB[i] != Gap {
			count++
		}
	}
	return count
}

// GapsA returns the number of gap symbols in the first aligned sequence.
func (r *Result) GapsA() int {
	return strings.Count(r.AlignedA, string(Gap))
}

// GapsB returns the number of gap symbols in the second aligned sequence.
func (r *Result) GapsB() int {
	return strings.Count(r.AlignedB, string(Gap))
}

// TotalGaps returns the total number of gap symbols.
func (r *Result) TotalGaps() int {
	return r.GapsA() + r.GapsB()
}

// GapOpenings counts gap runs across both aligned sequences.
func (r *Result) GapOpenings() int {
	openings := 0
	inGapA, inGapB := false, false
	for i := 0; i < len(r.AlignedA); i++ {
		if r.AlignedA[i] == Gap && !inGapA {
			openings++
			inGapA = true
		} else if r.AlignedA[i] != Gap {
			inGapA = false
		}
		if r.AlignedB[i] == Gap && !inGapB {
			openings++
			inGapB = true
		} else if r.AlignedB[i] != Gap {
			inGapB = false
		}
	}
	return openings
}

// ToCIGAR renders the alignment as a CIGAR string with M/X/I/D ops.
func (r *Result) ToCIGAR() string {
	if len(r.AlignedA) == 0 {
		return ""
	}
	var cigar strings.Builder
	currentOp := byte(0)
	count := 0
	for i := 0; i < len(r.AlignedA); i++ {
		var op byte
		switch {
		case r.AlignedA[i] == Gap:
			op = 'I'
		case r.AlignedB[i] == Gap:
			op = 'D'
		case r.AlignedA[i] == r.AlignedB[i]:
			op = 'M'
		default:
			op = 'X'
		}
		if op == currentOp {
			count++
		} else {
			if count > 0 {
				fmt.Fprintf(&cigar, "%d%c", count, currentOp)
			}
			currentOp = op
			count = 1
		}
	}
	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}
	return cigar.String()
}

// Format returns a human-readable three-line rendering with a match line.
func (r *Result) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(r.AlignedA); i++ {
		switch {
		case r.AlignedA[i] == r.AlignedB[i] && r.AlignedA[i] != Gap:
			matchLine.WriteByte('|')
		case r.AlignedA[i] == Gap || r.AlignedB[i] == Gap:
			matchLine.WriteByte(' ')
		default:
			matchLine.WriteByte('.')
		}
	}
	return fmt.Sprintf("SeqA: %s\n      %s\nSeqB: %s\nScore: %d (%s)\nIdentity: %.1f%%\nCIGAR: %s",
		r.AlignedA, matchLine.String(), r.AlignedB,
		r.Score, r.Mode, r.Identity*100, r.ToCIGAR())
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { score: %d, mode: %s, identity: %.1f%%, length: %d }",
		r.Score, r.Mode, r.Identity*100, r.Length())
}
