// SPDX-License-Identifier: MIT

package covtree

// buildMcCreight constructs a suffix tree over w using McCreight's
// linear-time algorithm (McCreight, "A space-economical suffix tree
// construction algorithm", ACM 1976). It does not populate begins/ends;
// the caller (Build) attaches those afterwards.
func buildMcCreight(w []int) *Tree {
	t := &Tree{w: w}
	root := t.newNode(0, 0)
	t.nodes[root].parent = root
	t.nodes[root].suffixLink = root

	u := root
	d := 0
	n := len(w)

	for i := 0; i < n; i++ {
		// 1. Descend as far as existing edges permit.
		for t.nodes[u].depth == d {
			child, ok := t.transition(u, w[d+i])
			if !ok {
				break
			}
			u = child
			d++
			for d < t.nodes[u].depth && w[t.nodes[u].idx+d] == w[i+d] {
				d++
			}
		}

		// 2. Split if necessary.
		if d < t.nodes[u].depth {
			u = t.splitEdge(u, d)
		}

		// 3. Attach the new leaf.
		t.createLeaf(i, u, d)

		// 4. Compute the suffix link for a newly split node, if absent.
		if t.nodes[u].suffixLink == nilID {
			t.computeSuffixLink(u)
		}

		// 5. Follow the suffix link for the next iteration.
		u = t.nodes[u].suffixLink
		d--
		if d < 0 {
			d = 0
		}
	}

	return t
}

// splitEdge inserts a new internal node on the edge entering u at depth
// d, where d < u.depth. The new node inherits the part of u's edge
// corresponding to depths [parent(u).depth, d) and returns its handle.
func (t *Tree) splitEdge(u nodeID, d int) nodeID {
	i := t.nodes[u].idx
	p := t.nodes[u].parent

	v := t.newNode(i, d)
	t.addTransition(v, u, t.w[i+d])
	t.addTransition(p, v, t.w[i+t.nodes[p].depth])

	return v
}

// createLeaf attaches a new leaf at depth len(w)-i under u, for the
// suffix starting at position i.
func (t *Tree) createLeaf(i int, u nodeID, d int) nodeID {
	leaf := t.newNode(i, len(t.w)-i)
	t.addTransition(u, leaf, t.w[i+d])
	return leaf
}

// computeSuffixLink computes the suffix link for u, an internal node at
// depth d whose parent's suffix link is already known: starting from
// parent(u)'s suffix link, it descends a full edge at a time until
// reaching depth d-1, splitting if that lands inside an edge.
func (t *Tree) computeSuffixLink(u nodeID) {
	d := t.nodes[u].depth
	v := t.nodes[t.nodes[u].parent].suffixLink

	for t.nodes[v].depth < d-1 {
		sym := t.w[t.nodes[u].idx+t.nodes[v].depth+1]
		child, ok := t.transition(v, sym)
		if !ok {
			panic("covtree: internal error: missing transition while computing suffix link")
		}
		v = child
	}

	if t.nodes[v].depth > d-1 {
		v = t.splitEdge(v, d-1)
	}

	t.nodes[u].suffixLink = v
}
