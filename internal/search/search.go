// Package search finds pattern occurrences in sequences.
//
// Two access modes serve the same contract, a lazy, restartable, finite
// stream of 0-based offsets. Scan mode runs a Horspool bad-character scan
// and suits single queries; index mode queries a suffix array built at most
// once per sequence and cached for its lifetime, and suits repeated queries
// against one fixed sequence.
//
// Patterns may contain a designated wildcard symbol, which matches any
// alphabet symbol, and ambiguity codes of the sequence's alphabet, which
// match any of the base symbols they represent.
package search

import (
	"fmt"
	"strings"

	"github.com/bioseq/alignkit/internal/sequence"
)

// InvalidParametersError is returned for an empty pattern or a pattern
// symbol unrelated to the sequence's alphabet.
type InvalidParametersError struct {
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return "invalid search parameters: " + e.Reason
}

// Options configures pattern interpretation. The zero value means exact
// matching with ambiguity codes honored and no wildcard.
type Options struct {
	// Wildcard designates a pattern symbol that matches any alphabet
	// symbol. Zero disables wildcard handling.
	Wildcard byte

	// CaseFold upper-cases the pattern before compilation, matching the
	// normalization sequences get at construction.
	CaseFold bool
}

// compiled is a pattern lowered to per-position acceptance tables plus a
// bad-character shift table. literal is set when every position accepts
// exactly one symbol, enabling exact-match fast paths.
type compiled struct {
	raw     string
	accept  [][256]bool
	shift   [256]int
	literal bool
}

func compile(seq *sequence.Sequence, pattern string, opts *Options) (*compiled, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.CaseFold {
		pattern = strings.ToUpper(pattern)
	}
	if len(pattern) == 0 {
		return nil, &InvalidParametersError{Reason: "pattern must not be empty"}
	}

	alpha := seq.Alphabet()
	c := &compiled{
		raw:     pattern,
		accept:  make([][256]bool, len(pattern)),
		literal: true,
	}
	for i := 0; i < len(pattern); i++ {
		sym := pattern[i]
		switch {
		case opts.Wildcard != 0 && sym == opts.Wildcard:
			for _, s := range alpha.Symbols() {
				c.accept[i][s] = true
			}
			c.literal = false
		case alpha.IsAmbiguous(sym):
			c.accept[i][sym] = true
			for _, s := range alpha.BasesOf(sym) {
				c.accept[i][s] = true
			}
			c.literal = false
		case alpha.Contains(sym):
			c.accept[i][sym] = true
		default:
			return nil, &InvalidParametersError{
				Reason: fmt.Sprintf("pattern symbol '%c' is not in sequence alphabet %s", sym, alpha.Name()),
			}
		}
	}

	// Bad-character shifts. A position accepting several symbols records
	// the shift for each of them, so wildcards and ambiguity codes degrade
	// the shift conservatively instead of breaking correctness.
	plen := len(pattern)
	for b := range c.shift {
		c.shift[b] = plen
	}
	for i := 0; i < plen-1; i++ {
		for b := 0; b < 256; b++ {
			if c.accept[i][b] {
				c.shift[b] = plen - 1 - i
			}
		}
	}
	return c, nil
}

// matchAt reports whether the pattern matches text at offset pos,
// comparing right to left.
func (c *compiled) matchAt(text string, pos int) bool {
	for j := len(c.accept) - 1; j >= 0; j-- {
		if !c.accept[j][text[pos+j]] {
			return false
		}
	}
	return true
}

// scanStepper returns a closure yielding successive match offsets.
func (c *compiled) scanStepper(text string) func() (int, bool) {
	pos := 0
	plen := len(c.accept)
	return func() (int, bool) {
		for pos+plen <= len(text) {
			hit := c.matchAt(text, pos)
			at := pos
			advance := c.shift[text[pos+plen-1]]
			if advance < 1 {
				advance = 1
			}
			pos += advance
			if hit {
				return at, true
			}
		}
		return -1, false
	}
}

// Scan finds every occurrence of pattern in seq with a single-pass
// Horspool scan. A pattern longer than the sequence yields zero matches.
func Scan(seq *sequence.Sequence, pattern string, opts *Options) (*Hits, error) {
	c, err := compile(seq, pattern, opts)
	if err != nil {
		return nil, err
	}
	text := seq.Symbols()
	return newHits(func() func() (int, bool) {
		return c.scanStepper(text)
	}), nil
}
