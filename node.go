// SPDX-License-Identifier: MIT

package covtree

import "github.com/bits-and-blooms/bitset"

// node is one node of the suffix tree, stored by value in Tree.nodes. A
// node is a leaf iff it has no transitions; depth and idx are sufficient
// to materialize the edge label in either case, so there is no separate
// leaf type.
type node struct {
	idx   int // position in w the edge leading here was cut from
	depth int // total label length from the root to this node

	parent     nodeID
	suffixLink nodeID // nilID until computed; only meaningful for internal nodes

	// transitions maps the first symbol of an outgoing edge to its child.
	// Keys are distinct per node. nil for leaves.
	transitions map[int]nodeID

	// generalizedIdxs is the set of sequence indices that appear in this
	// node's subtree. Populated once by labelGeneralized, which Build calls
	// right after construction.
	generalizedIdxs *bitset.BitSet
}

func (n *node) isLeaf() bool {
	return len(n.transitions) == 0
}

// Tree is an opaque, immutable-after-construction generalized suffix tree
// handle: the sole exported type of this package other than the error,
// Covering and BreakPoint types. It supports read-only queries (Find, FindAll,
// LCS, EvaluateSimple, EvaluateDichotomic, SeqID) concurrently from any
// number of goroutines; it has no exported fields and no mutation API.
type Tree struct {
	w     []int  // the assembled symbol buffer W
	nodes []node // the node arena; index 0 is always the root

	// begins[i]/ends[i] are the half-open [begin, end) span of sequence i
	// within w, terminator excluded. A sequence's first symbol position
	// doubles as its "word start", so no separate slice is kept for that.
	begins []int
	ends   []int

	labeled bool // whether labelGeneralized has run yet
}

const rootID nodeID = 0

// newNode appends a fresh node to the arena and returns its handle.
func (t *Tree) newNode(idx, depth int) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		idx:        idx,
		depth:      depth,
		parent:     nilID,
		suffixLink: nilID,
	})
	return id
}

// addTransition records that parent's outgoing edge keyed by sym leads to
// child, and sets child's parent link. It does not touch suffixLink.
func (t *Tree) addTransition(parent, child nodeID, sym int) {
	p := &t.nodes[parent]
	if p.transitions == nil {
		p.transitions = make(map[int]nodeID)
	}
	p.transitions[sym] = child
	t.nodes[child].parent = parent
}

// transition looks up parent's outgoing edge keyed by sym.
func (t *Tree) transition(parent nodeID, sym int) (nodeID, bool) {
	child, ok := t.nodes[parent].transitions[sym]
	return child, ok
}

// NumSequences reports how many sequences this tree was built from.
func (t *Tree) NumSequences() int {
	return len(t.begins)
}

// Len reports the length of the assembled symbol buffer, including
// terminators.
func (t *Tree) Len() int {
	return len(t.w)
}
