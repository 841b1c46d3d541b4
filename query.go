// SPDX-License-Identifier: MIT

package covtree

import "slices"

// Find returns a starting position in the tree's symbol buffer at which y
// occurs, and true, or (0, false) if y does not occur at all.
//
// When y matches more than one occurrence, Find returns whichever one the
// walk ends on: the idx of the node (or edge) it stops at, which is a
// valid occurrence but not necessarily the lexicographically smallest
// one. Callers that need every occurrence, or the smallest, should use
// FindAll.
func (t *Tree) Find(y []int) (int, bool) {
	if len(y) == 0 {
		return t.nodes[rootID].idx, true
	}

	node := rootID
	pos := 0
	for pos < len(y) {
		child, ok := t.transition(node, y[pos])
		if !ok {
			return 0, false
		}

		edgeStart := t.nodes[child].idx + t.nodes[node].depth
		edgeLen := t.nodes[child].depth - t.nodes[node].depth

		match := 0
		for match < edgeLen && pos+match < len(y) && t.w[edgeStart+match] == y[pos+match] {
			match++
		}

		if pos+match == len(y) {
			// y is consumed wholly within this edge (or exactly at its
			// end): the whole root-to-child label is a fixed substring of
			// w starting at child.idx, and y is a prefix of it.
			return t.nodes[child].idx, true
		}
		if match < edgeLen {
			// mismatch inside the edge
			return 0, false
		}

		pos += match
		node = child
	}

	return t.nodes[node].idx, true
}

// FindAll returns every starting position in the tree's symbol buffer at
// which y occurs, or nil if it doesn't occur. The order is deterministic
// given the tree (a depth-first walk that visits each node's transitions
// in increasing symbol order) but otherwise unspecified.
func (t *Tree) FindAll(y []int) []int {
	node := rootID
	pos := 0

	for pos < len(y) {
		child, ok := t.transition(node, y[pos])
		if !ok {
			return nil
		}

		edgeStart := t.nodes[child].idx + t.nodes[node].depth
		edgeLen := t.nodes[child].depth - t.nodes[node].depth

		match := 0
		for match < edgeLen && pos+match < len(y) && t.w[edgeStart+match] == y[pos+match] {
			match++
		}

		if pos+match == len(y) {
			return t.leavesUnder(child)
		}
		if match < edgeLen {
			return nil
		}

		pos += match
		node = child
	}

	return t.leavesUnder(node)
}

// leavesUnder collects the idx of every leaf in n's subtree (n included),
// via an explicit stack so arbitrarily deep trees don't recurse.
func (t *Tree) leavesUnder(n nodeID) []int {
	var out []int
	stack := []nodeID{n}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		trans := t.nodes[cur].transitions
		if len(trans) == 0 {
			out = append(out, t.nodes[cur].idx)
			continue
		}

		keys := make([]int, 0, len(trans))
		for k := range trans {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		// push in decreasing key order so the stack pops smallest-key first
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, trans[keys[i]])
		}
	}

	return out
}
