package align

import (
	"context"
	"math"
)

// negInf is low enough to never win a maximum yet safe to add gap costs to.
const negInf = math.MinInt / 4

// DP layers. sub holds substitution (diagonal) states, gapB holds states
// ending with a gap in the second sequence (vertical move), gapA holds
// states ending with a gap in the first sequence (horizontal move).
const (
	layerSub = iota
	layerGapB
	layerGapA
)

// dp holds the filled Gotoh matrices for one alignment run. Full matrices
// are retained so the traceback can enumerate tied optimal paths; the
// score-only entry points avoid this storage.
type dp struct {
	a, b string
	p    *Params

	sub  [][]int
	gapB [][]int
	gapA [][]int
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// fill runs the Gotoh recurrence over both sequences. Cancellation is
// checked between rows.
func fill(ctx context.Context, a, b string, p *Params) (*dp, error) {
	m, n := len(a), len(b)
	local := p.Mode == Local
	open, extend := p.GapOpen, p.GapExtend

	d := &dp{a: a, b: b, p: p}
	d.sub = make([][]int, m+1)
	d.gapB = make([][]int, m+1)
	d.gapA = make([][]int, m+1)
	for i := 0; i <= m; i++ {
		d.sub[i] = make([]int, n+1)
		d.gapB[i] = make([]int, n+1)
		d.gapA[i] = make([]int, n+1)
	}

	d.sub[0][0] = 0
	d.gapB[0][0] = negInf
	d.gapA[0][0] = negInf
	for i := 1; i <= m; i++ {
		if local {
			d.sub[i][0] = 0
			d.gapB[i][0] = negInf
		} else {
			d.sub[i][0] = negInf
			d.gapB[i][0] = max3(d.sub[i-1][0]+open, d.gapB[i-1][0]+extend, negInf)
		}
		d.gapA[i][0] = negInf
	}
	for j := 1; j <= n; j++ {
		if local {
			d.sub[0][j] = 0
			d.gapA[0][j] = negInf
		} else {
			d.sub[0][j] = negInf
			d.gapA[0][j] = max3(d.sub[0][j-1]+open, d.gapA[0][j-1]+extend, negInf)
		}
		d.gapB[0][j] = negInf
	}

	for i := 1; i <= m; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := 1; j <= n; j++ {
			s := p.Matrix.Score(a[i-1], b[j-1])

			diag := max3(d.sub[i-1][j-1], d.gapB[i-1][j-1], d.gapA[i-1][j-1]) + s
			if local && diag < 0 {
				diag = 0
			}
			d.sub[i][j] = diag
			d.gapB[i][j] = max3(d.sub[i-1][j]+open, d.gapB[i-1][j]+extend, d.gapA[i-1][j]+open)
			d.gapA[i][j] = max3(d.sub[i][j-1]+open, d.gapB[i][j-1]+open, d.gapA[i][j-1]+extend)
		}
	}
	return d, nil
}

// bestGlobal returns the optimal global score and its layer at the final
// cell, preferring the substitution layer on ties, then gapB, then gapA.
func (d *dp) bestGlobal() (score, layer int) {
	m, n := len(d.a), len(d.b)
	score, layer = d.sub[m][n], layerSub
	if d.gapB[m][n] > score {
		score, layer = d.gapB[m][n], layerGapB
	}
	if d.gapA[m][n] > score {
		score, layer = d.gapA[m][n], layerGapA
	}
	return score, layer
}

// bestLocal returns the optimal local score and every substitution-layer
// cell holding it, in row-major order.
func (d *dp) bestLocal() (int, [][2]int) {
	best := 0
	var cells [][2]int
	for i := 1; i <= len(d.a); i++ {
		for j := 1; j <= len(d.b); j++ {
			switch v := d.sub[i][j]; {
			case v > best:
				best = v
				cells = cells[:0]
				cells = append(cells, [2]int{i, j})
			case v == best && v > 0:
				cells = append(cells, [2]int{i, j})
			}
		}
	}
	return best, cells
}
