// SPDX-License-Identifier: MIT

package covtree

// nodeID is a handle into a Tree's node arena. It is never an owning
// reference: parent, suffixLink and transition targets are all nodeID
// values, not pointers, so the arena can grow (and its backing array can
// be reallocated) during construction without invalidating anything held
// by a caller.
type nodeID int32

// nilID marks the absence of a link, e.g. an internal node whose suffix
// link hasn't been computed yet during construction.
const nilID nodeID = -1

// MaxSequences is the largest number of sequences Build/BuildGeneralized
// will accept in a single call. Terminators are synthesized as
// -1, -2, ..., -MaxSequences; asking for more exhausts that supply.
const MaxSequences = 999_999
