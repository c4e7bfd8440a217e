package search

import (
	"index/suffixarray"
	"sort"
	"sync"

	"github.com/bioseq/alignkit/internal/sequence"
)

// entry guards at-most-once suffix array construction per sequence. When
// several callers race to build the index for the same sequence, one builds
// and the rest block on the Once; the built index is read-only afterwards
// and shared by concurrent queries without synchronization.
type entry struct {
	once sync.Once
	sa   *suffixarray.Index
}

// indexes caches one suffix array per Sequence. Sequences are immutable, so
// there is no invalidation path; constructing a new Sequence yields a new
// cache key.
var indexes sync.Map

func indexFor(seq *sequence.Sequence) *suffixarray.Index {
	v, _ := indexes.LoadOrStore(seq, &entry{})
	e := v.(*entry)
	e.once.Do(func() {
		e.sa = suffixarray.New([]byte(seq.Symbols()))
	})
	return e.sa
}

// Lookup finds every occurrence of pattern in seq through the sequence's
// cached suffix array, building it on first use. Wildcard and ambiguity
// patterns anchor on their longest literal run and verify candidates; a
// pattern with no literal symbols falls back to a scan.
func Lookup(seq *sequence.Sequence, pattern string, opts *Options) (*Hits, error) {
	c, err := compile(seq, pattern, opts)
	if err != nil {
		return nil, err
	}
	text := seq.Symbols()
	if len(c.accept) > len(text) {
		return newHits(func() func() (int, bool) {
			return func() (int, bool) { return -1, false }
		}), nil
	}

	if c.literal {
		sa := indexFor(seq)
		return newHits(func() func() (int, bool) {
			offsets := sa.Lookup([]byte(c.raw), -1)
			sort.Ints(offsets)
			i := 0
			return func() (int, bool) {
				if i >= len(offsets) {
					return -1, false
				}
				pos := offsets[i]
				i++
				return pos, true
			}
		}), nil
	}

	start, length := c.longestLiteralRun()
	if length == 0 {
		return newHits(func() func() (int, bool) {
			return c.scanStepper(text)
		}), nil
	}

	sa := indexFor(seq)
	anchor := []byte(c.raw[start : start+length])
	plen := len(c.accept)
	return newHits(func() func() (int, bool) {
		candidates := sa.Lookup(anchor, -1)
		matches := make([]int, 0, len(candidates))
		for _, off := range candidates {
			pos := off - start
			if pos < 0 || pos+plen > len(text) {
				continue
			}
			if c.matchAt(text, pos) {
				matches = append(matches, pos)
			}
		}
		sort.Ints(matches)
		i := 0
		return func() (int, bool) {
			if i >= len(matches) {
				return -1, false
			}
			pos := matches[i]
			i++
			return pos, true
		}
	}), nil
}

// longestLiteralRun returns the longest stretch of pattern positions that
// accept exactly one symbol.
func (c *compiled) longestLiteralRun() (start, length int) {
	runStart, runLen := 0, 0
	for i := 0; i <= len(c.accept); i++ {
		literal := false
		if i < len(c.accept) {
			n := 0
			for b := 0; b < 256; b++ {
				if c.accept[i][b] {
					n++
				}
			}
			literal = n == 1
		}
		if literal {
			if runLen == 0 {
				runStart = i
			}
			runLen++
			if runLen > length {
				start, length = runStart, runLen
			}
		} else {
			runLen = 0
		}
	}
	return start, length
}
