// SPDX-License-Identifier: MIT

package covtree

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// labelGeneralized performs a post-order traversal assigning each node the
// set of sequence indices reachable in its subtree: every leaf gets
// generalizedIdxs = {seq(p)} for the sequence p resolves to, and every
// internal node gets the union of its children's sets. Called once by
// Build, right after construction, so Tree is fully labeled before it is
// ever handed to a caller; LCS then only ever reads generalizedIdxs.
//
// Implemented as an explicit stack, not recursion, since the tree can be
// deep.
func (t *Tree) labelGeneralized() {
	if t.labeled {
		return
	}

	type frame struct {
		id      nodeID
		visited bool
	}

	stack := []frame{{id: rootID}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.visited {
			id := top.id
			stack = stack[:len(stack)-1]

			n := &t.nodes[id]
			if n.isLeaf() {
				seq, _ := t.SeqID(n.idx)
				bs := bitset.New(0)
				bs.Set(uint(seq))
				n.generalizedIdxs = bs
				continue
			}

			bs := bitset.New(0)
			for _, child := range n.transitions {
				bs.InPlaceUnion(t.nodes[child].generalizedIdxs)
			}
			n.generalizedIdxs = bs
			continue
		}

		top.visited = true
		for _, child := range t.nodes[top.id].transitions {
			stack = append(stack, frame{id: child})
		}
	}

	t.labeled = true
}

// LCS returns the longest substring of the tree's symbol buffer that
// occurs in every sequence whose index is named in subset. With no
// subset given, it defaults to all sequences the tree was built from.
//
// For a tree built from a single sequence, LCS degenerates to that whole
// sequence: it is the k=1 case of the generalized definition, not a
// separate code path.
func (t *Tree) LCS(subset ...int) []int {
	want := bitset.New(0)
	if len(subset) == 0 {
		for i := 0; i < len(t.begins); i++ {
			want.Set(uint(i))
		}
	} else {
		for _, i := range subset {
			want.Set(uint(i))
		}
	}

	deepest := t.findLCS(rootID, want)
	n := &t.nodes[deepest]
	label := t.w[n.idx : n.idx+n.depth]
	// a leaf's label runs on through its sequence's terminator; only the
	// part before the first terminator is a substring of the sequence.
	for i, sym := range label {
		if sym < 0 {
			return label[:i]
		}
	}
	return label
}

// findLCS recursively (over the already-built tree, whose depth is bounded
// in practice by the sum of input lengths) picks the deepest descendant
// whose generalizedIdxs is a superset of want, falling back to the node
// itself if none of its children qualify. Ties are broken by taking the
// first qualifying child encountered in (sorted) transition order.
func (t *Tree) findLCS(n nodeID, want *bitset.BitSet) nodeID {
	keys := make([]int, 0, len(t.nodes[n].transitions))
	for k := range t.nodes[n].transitions {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var best nodeID = nilID
	for _, k := range keys {
		child := t.nodes[n].transitions[k]
		if !t.nodes[child].generalizedIdxs.IsSuperSet(want) {
			continue
		}
		candidate := t.findLCS(child, want)
		if best == nilID || t.nodes[candidate].depth > t.nodes[best].depth {
			best = candidate
		}
	}

	if best == nilID {
		return n
	}
	return best
}
