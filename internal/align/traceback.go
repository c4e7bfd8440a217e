package align

// Traceback ops, recorded end-to-start and replayed in reverse.
const (
	opDiag = byte('D') // consume one symbol of each sequence
	opUp   = byte('U') // consume a symbol of A, gap in B
	opLeft = byte('L') // consume a symbol of B, gap in A
)

// traceback reconstructs the optimal alignment path(s). Predecessors are
// recomputed from the filled matrices rather than stored; when several
// predecessors tie, the substitution (diagonal) layer wins, then the
// vertical gap layer, then the horizontal one, which makes output
// deterministic. With MaxAlignments > 1 every tied path is enumerated up to
// the cap.
func (d *dp) traceback() []*Result {
	if d.p.Mode == Global {
		score, layer := d.bestGlobal()
		if d.p.MaxAlignments == 1 {
			ops, si, sj := d.walkOne(layer, len(d.a), len(d.b))
			return []*Result{d.buildResult(ops, score, si, sj, len(d.a), len(d.b))}
		}
		var out []*Result
		d.enumerate(layer, len(d.a), len(d.b), len(d.a), len(d.b), score, nil, &out)
		return out
	}

	score, cells := d.bestLocal()
	if score == 0 {
		// Nothing scores above zero: the optimal local alignment is empty.
		return []*Result{newResult("", "", 0, 0, 0, 0, 0, Local)}
	}
	var out []*Result
	for _, cell := range cells {
		if len(out) >= d.p.MaxAlignments {
			break
		}
		if d.p.MaxAlignments == 1 {
			ops, si, sj := d.walkOne(layerSub, cell[0], cell[1])
			out = append(out, d.buildResult(ops, score, si, sj, cell[0], cell[1]))
			break
		}
		d.enumerate(layerSub, cell[0], cell[1], cell[0], cell[1], score, nil, &out)
	}
	return out
}

// done reports whether a traceback position is the start of the alignment.
func (d *dp) done(layer, i, j int) bool {
	if d.p.Mode == Global {
		return i == 0 && j == 0
	}
	return layer == layerSub && d.sub[i][j] == 0
}

// predecessors returns the layers whose value could have produced the
// current cell, in tie-break priority order.
func (d *dp) predecessors(layer, i, j int) []int {
	open, extend := d.p.GapOpen, d.p.GapExtend
	preds := make([]int, 0, 3)
	switch layer {
	case layerSub:
		target := d.sub[i][j] - d.p.Matrix.Score(d.a[i-1], d.b[j-1])
		if d.sub[i-1][j-1] == target {
			preds = append(preds, layerSub)
		}
		if d.gapB[i-1][j-1] == target {
			preds = append(preds, layerGapB)
		}
		if d.gapA[i-1][j-1] == target {
			preds = append(preds, layerGapA)
		}
		// A clamped local cell has no predecessor in any layer; the walk
		// never asks for one because it stops at zero-valued cells first.
	case layerGapB:
		v := d.gapB[i][j]
		if d.sub[i-1][j]+open == v {
			preds = append(preds, layerSub)
		}
		if d.gapB[i-1][j]+extend == v {
			preds = append(preds, layerGapB)
		}
		if d.gapA[i-1][j]+open == v {
			preds = append(preds, layerGapA)
		}
	case layerGapA:
		v := d.gapA[i][j]
		if d.sub[i][j-1]+open == v {
			preds = append(preds, layerSub)
		}
		if d.gapB[i][j-1]+open == v {
			preds = append(preds, layerGapB)
		}
		if d.gapA[i][j-1]+extend == v {
			preds = append(preds, layerGapA)
		}
	}
	return preds
}

func step(layer, i, j int) (op byte, ni, nj int) {
	switch layer {
	case layerSub:
		return opDiag, i - 1, j - 1
	case layerGapB:
		return opUp, i - 1, j
	default:
		return opLeft, i, j - 1
	}
}

// walkOne follows the single highest-priority path back to the alignment
// start, returning the ops (end-to-start) and the start offsets.
func (d *dp) walkOne(layer, i, j int) (ops []byte, si, sj int) {
	for !d.done(layer, i, j) {
		op, ni, nj := step(layer, i, j)
		ops = append(ops, op)
		layer = d.predecessors(layer, i, j)[0]
		i, j = ni, nj
	}
	return ops, i, j
}

// enumerate explores every tied predecessor choice depth-first, appending a
// Result per complete path until the cap is reached.
func (d *dp) enumerate(layer, i, j, ei, ej, score int, ops []byte, out *[]*Result) {
	if len(*out) >= d.p.MaxAlignments {
		return
	}
	if d.done(layer, i, j) {
		*out = append(*out, d.buildResult(ops, score, i, j, ei, ej))
		return
	}
	op, ni, nj := step(layer, i, j)
	ops = append(ops, op)
	for _, pred := range d.predecessors(layer, i, j) {
		d.enumerate(pred, ni, nj, ei, ej, score, ops, out)
		if len(*out) >= d.p.MaxAlignments {
			return
		}
	}
}

// buildResult replays ops start-to-end to produce the aligned strings.
func (d *dp) buildResult(ops []byte, score, si, sj, ei, ej int) *Result {
	alignedA := make([]byte, 0, len(ops))
	alignedB := make([]byte, 0, len(ops))
	ai, bi := si, sj
	for k := len(ops) - 1; k >= 0; k-- {
		switch ops[k] {
		case opDiag:
			alignedA = append(alignedA, d.a[ai])
			alignedB = append(alignedB, d.b[bi])
			ai++
			bi++
		case opUp:
			alignedA = append(alignedA, d.a[ai])
			alignedB = append(alignedB, Gap)
			ai++
		case opLeft:
			alignedA = append(alignedA, Gap)
			alignedB = append(alignedB, d.b[bi])
			bi++
		}
	}
	return newResult(string(alignedA), string(alignedB), score, si, sj, ei, ej, d.p.Mode)
}
