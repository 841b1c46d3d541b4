// SPDX-License-Identifier: MIT

// Package rando generates random integer sequences for covtree's property
// tests, over a small alphabet so that substrings and mismatches both
// occur often enough to exercise tree construction and the covering
// evaluator.
package rando

import "math/rand/v2"

// Sequence returns a random sequence of n non-negative symbols drawn from
// [0, alphabet).
func Sequence(prng *rand.Rand, n, alphabet int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = prng.IntN(alphabet)
	}
	return s
}

// Sequences returns k random sequences, each of length n, over the given
// alphabet.
func Sequences(prng *rand.Rand, k, n, alphabet int) [][]int {
	out := make([][]int, k)
	for i := range out {
		out[i] = Sequence(prng, n, alphabet)
	}
	return out
}

// Mutate returns a copy of s with roughly one symbol in rate replaced by a
// fresh random symbol from the same alphabet, simulating a near-duplicate
// with occasional edits.
func Mutate(prng *rand.Rand, s []int, alphabet, rate int) []int {
	out := make([]int, len(s))
	copy(out, s)
	for i := range out {
		if rate > 0 && prng.IntN(rate) == 0 {
			out[i] = prng.IntN(alphabet)
		}
	}
	return out
}
