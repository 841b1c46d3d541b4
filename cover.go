// SPDX-License-Identifier: MIT

package covtree

// BreakPoint records where a covering decomposition's greedy block ended:
// the symbol that broke the match, and the length of the block that
// preceded it.
type BreakPoint struct {
	Symbol int
	Length int
}

// Covering is the result of EvaluateSimple or EvaluateDichotomic: how well
// a query sequence is tiled by maximal substrings present in the tree.
type Covering struct {
	// Score is (L - number of breaks) / L, in [0, 1]; an empty query
	// scores 1.
	Score float64

	// Breaks records, in order, each point where the greedy tiling had to
	// start a new block.
	Breaks []BreakPoint

	// Blocks is the sequence of maximal in-tree substrings the query was
	// decomposed into; they concatenate back to the query.
	Blocks [][]int
}

// EvaluateSimple partitions s into a left-to-right greedy tiling of
// maximal substrings present in the tree, each found by a linear scan for
// the block's end. See EvaluateDichotomic for a variant tuned for long
// matched blocks.
func (t *Tree) EvaluateSimple(s []int) Covering {
	L := len(s)
	if L == 0 {
		return Covering{Score: 1}
	}

	var breaks []BreakPoint
	var blocks [][]int

	beg := 0
	for beg < L {
		end := beg + 1
		for end <= L {
			if _, ok := t.Find(s[beg:end]); !ok {
				break
			}
			end++
		}

		next := end
		if end <= L {
			breaks = append(breaks, BreakPoint{Symbol: s[end-1], Length: end - 1 - beg})
			if end-1-beg > 0 {
				next = end - 1
			}
		}
		if beg+1 == end {
			end++
		}

		block := make([]int, end-1-beg)
		copy(block, s[beg:end-1])
		blocks = append(blocks, block)

		beg = next
	}

	score := float64(L-len(breaks)) / float64(L)
	return Covering{Score: score, Breaks: breaks, Blocks: blocks}
}

// EvaluateDichotomic computes the same greedy block decomposition as
// EvaluateSimple, but finds each block's endpoint via a two-phase
// bisection (doubling then halving) rather than a linear scan, which pays
// off when matched blocks are long. A short linear polish after the
// bisection guarantees the endpoint lands exactly on the first mismatch
// regardless of the bisection's parity; skipping it (as the very first
// version of this algorithm did) produces off-by-a-few boundaries.
func (t *Tree) EvaluateDichotomic(s []int) Covering {
	L := len(s)
	if L == 0 {
		return Covering{Score: 1}
	}

	var breaks []BreakPoint
	var blocks [][]int

	beg := 0
	for beg < L {
		end := t.nextBreak(s[beg:]) + beg - 1
		if end == beg {
			// s[beg] itself isn't in the tree; advance past it so the
			// decomposition always makes forward progress.
			end++
		}

		if end < L {
			breaks = append(breaks, BreakPoint{Symbol: s[end], Length: end - beg})
		}

		block := make([]int, end-beg)
		copy(block, s[beg:end])
		blocks = append(blocks, block)

		beg = end
	}

	score := float64(L-len(blocks)+1) / float64(L)
	return Covering{Score: score, Breaks: breaks, Blocks: blocks}
}

// nextBreak finds, for the remaining suffix s (always searched from its
// own position 0), the smallest t such that s[:t] no longer occurs in the
// tree, or len(s)+1 if all of s occurs; the current block is s[:t-1]. It
// first narrows the range with a doubling/halving bisection, then polishes
// linearly to the exact boundary.
func (t *Tree) nextBreak(s []int) int {
	E := len(s)
	beg := 0
	end := E
	pos := (beg + end) / 2
	pos0 := beg

	for {
		_, ok := t.Find(s[beg:pos])
		for ok && absInt(pos-end) > 1 {
			pos0 = pos
			pos = (pos + end) / 2
			_, ok = t.Find(s[beg:pos])
		}
		if absInt(pos0-end) <= 1 {
			break
		}

		_, ok = t.Find(s[beg:pos])
		for !ok && absInt(pos-pos0) > 1 {
			pos = (pos0 + pos) / 2
			_, ok = t.Find(s[beg:pos])
		}
		if absInt(pos-pos0) <= 1 {
			break
		}
	}

	for pos > 0 {
		if _, ok := t.Find(s[beg:pos]); ok {
			break
		}
		pos--
	}
	for pos <= E {
		if _, ok := t.Find(s[beg:pos]); !ok {
			break
		}
		pos++
	}

	return pos
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SeqID resolves a position n in the tree's symbol buffer to the sequence
// it belongs to and n's offset within that sequence, via binary search in
// the span registry with a final linear correction.
//
// A position exactly at a sequence's terminator is attributed to that
// sequence (the terminator trails its own sequence), matching the
// reference implementation this module is grounded on.
func (t *Tree) SeqID(n int) (seq, offset int) {
	lb, le := t.begins, t.ends
	tb, te := 0, len(lb)-1

	for te != tb && absInt(tb-te) != 1 {
		m := (te + tb) / 2
		switch {
		case n < lb[m]:
			te = m - 1
		case n > lb[m]:
			tb = m + 1
		default:
			return m, 0
		}
	}

	for lb[tb] > n {
		tb--
	}
	for le[tb] < n {
		tb++
	}

	return tb, n - lb[tb]
}

// Similarity builds a tree over each of a and b, evaluates each against
// the other's tree with EvaluateSimple, and averages the two covering
// scores, per the covering-similarity definition: sim(A,B) == sim(B,A) by
// construction.
func Similarity(a, b []int) (float64, error) {
	ta, err := Build(a)
	if err != nil {
		return 0, err
	}
	tb, err := Build(b)
	if err != nil {
		return 0, err
	}

	aToB := ta.EvaluateSimple(b).Score
	bToA := tb.EvaluateSimple(a).Score
	return (aToB + bToA) / 2, nil
}

// Distance is 1 - Similarity(a, b): the covering distance between a and b.
func Distance(a, b []int) (float64, error) {
	sim, err := Similarity(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - sim, nil
}
