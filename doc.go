// SPDX-License-Identifier: MIT

// Package covtree builds generalized suffix trees over sequences of
// integer symbols and uses them to compute a covering similarity between
// sequences: a measure of how well one sequence can be tiled by maximal
// substrings found in another.
//
// A Tree is built once, from one or more sequences, via Build or
// BuildGeneralized, and is immutable and safe for concurrent read-only use
// afterwards. There is no incremental or online construction API.
//
// Typical consumers are algorithmic-similarity clients: near-duplicate and
// plagiarism detection, time-series motif comparison, and longest-common-
// substring queries across a set of sequences.
package covtree
