package align

import (
	"context"

	"github.com/bioseq/alignkit/internal/sequence"
)

// ScoreContext computes the optimal alignment score without traceback,
// keeping two rows per layer instead of full matrices (O(len2) space).
// Cancellation is checked between rows.
func ScoreContext(ctx context.Context, a, b *sequence.Sequence, p *Params) (int, error) {
	if err := checkInputs(a, b, p); err != nil {
		return 0, err
	}
	sa, sb := a.Symbols(), b.Symbols()
	m, n := len(sa), len(sb)
	local := p.Mode == Local
	open, extend := p.GapOpen, p.GapExtend

	prevSub := make([]int, n+1)
	prevGapB := make([]int, n+1)
	prevGapA := make([]int, n+1)
	curSub := make([]int, n+1)
	curGapB := make([]int, n+1)
	curGapA := make([]int, n+1)

	prevSub[0] = 0
	prevGapB[0] = negInf
	prevGapA[0] = negInf
	for j := 1; j <= n; j++ {
		prevGapB[j] = negInf
		if local {
			prevSub[j] = 0
			prevGapA[j] = negInf
		} else {
			prevSub[j] = negInf
			prevGapA[j] = max3(prevSub[j-1]+open, prevGapA[j-1]+extend, negInf)
		}
	}

	best := 0
	for i := 1; i <= m; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		curGapA[0] = negInf
		if local {
			curSub[0] = 0
			curGapB[0] = negInf
		} else {
			curSub[0] = negInf
			curGapB[0] = max3(prevSub[0]+open, prevGapB[0]+extend, negInf)
		}
		for j := 1; j <= n; j++ {
			s := p.Matrix.Score(sa[i-1], sb[j-1])
			diag := max3(prevSub[j-1], prevGapB[j-1], prevGapA[j-1]) + s
			if local {
				if diag < 0 {
					diag = 0
				}
				if diag > best {
					best = diag
				}
			}
			curSub[j] = diag
			curGapB[j] = max3(prevSub[j]+open, prevGapB[j]+extend, prevGapA[j]+open)
			curGapA[j] = max3(curSub[j-1]+open, curGapB[j-1]+open, curGapA[j-1]+extend)
		}
		prevSub, curSub = curSub, prevSub
		prevGapB, curGapB = curGapB, prevGapB
		prevGapA, curGapA = curGapA, prevGapA
	}

	if local {
		return best, nil
	}
	return max3(prevSub[n], prevGapB[n], prevGapA[n]), nil
}
