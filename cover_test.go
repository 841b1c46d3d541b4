// SPDX-License-Identifier: MIT

package covtree

import (
	"slices"
	"testing"
)

func concatBlocks(blocks [][]int) []int {
	var out []int
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// Covering bounds (spec invariant 8).
func TestCoveringBoundsAndEmptyQuery(t *testing.T) {
	tr, err := Build([]int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, q := range [][]int{nil, {1}, {1, 2, 3}, {9, 9, 9}, {1, 2, 3, 4, 5}} {
		for _, cov := range []Covering{tr.EvaluateSimple(q), tr.EvaluateDichotomic(q)} {
			if cov.Score < 0 || cov.Score > 1 {
				t.Errorf("EvaluateSimple/Dichotomic(%v).Score = %v, want in [0,1]", q, cov.Score)
			}
		}
	}

	if s := tr.EvaluateSimple(nil).Score; s != 1 {
		t.Errorf("EvaluateSimple(nil).Score = %v, want 1", s)
	}
	if s := tr.EvaluateDichotomic(nil).Score; s != 1 {
		t.Errorf("EvaluateDichotomic(nil).Score = %v, want 1", s)
	}
}

// Self-cover (spec invariant 9).
func TestSelfCoverScoresOne(t *testing.T) {
	seq := []int{3, 1, 4, 1, 5, 9, 2, 6}
	tr, err := Build(seq)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cov := tr.EvaluateSimple(seq)
	if cov.Score != 1 {
		t.Errorf("EvaluateSimple(A).Score = %v, want 1", cov.Score)
	}
	if got := concatBlocks(cov.Blocks); !slices.Equal(got, seq) {
		t.Errorf("EvaluateSimple(A).Blocks concatenate to %v, want %v", got, seq)
	}
}

// Equivalence (spec invariant 10): Simple and Dichotomic must agree on
// block boundaries and score for the same input.
func TestSimpleAndDichotomicAgree(t *testing.T) {
	ref := []int{10, 2, 3, 5, 10, 2, 7, 8}
	tr, err := Build(ref)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cases := [][]int{
		{10, 2, 3, 5, 11, 2, 7, 8},
		{10, 2, 3, 5, 10, 2, 7, 8},
		{1, 2, 3},
		{10, 2, 3, 5},
		{99, 10, 2, 3, 5, 10, 2, 7, 8, 99},
	}
	for _, q := range cases {
		simple := tr.EvaluateSimple(q)
		dicho := tr.EvaluateDichotomic(q)

		if simple.Score != dicho.Score {
			t.Errorf("query %v: Simple.Score = %v, Dichotomic.Score = %v", q, simple.Score, dicho.Score)
		}
		if len(simple.Blocks) != len(dicho.Blocks) {
			t.Fatalf("query %v: Simple has %d blocks, Dichotomic has %d", q, len(simple.Blocks), len(dicho.Blocks))
		}
		for i := range simple.Blocks {
			if !slices.Equal(simple.Blocks[i], dicho.Blocks[i]) {
				t.Errorf("query %v block %d: Simple = %v, Dichotomic = %v", q, i, simple.Blocks[i], dicho.Blocks[i])
			}
		}
	}
}

// Hand-verified case: a single foreign symbol should force at least one
// break (EvaluateSimple records two here: one ending the block before it,
// one for the symbol itself) and the blocks should still reassemble the
// original query.
func TestEvaluateSimpleHandVerifiedCase(t *testing.T) {
	tr, err := Build([]int{10, 2, 3, 5, 10, 2, 7, 8})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cov := tr.EvaluateSimple([]int{10, 2, 3, 5, 11, 2, 7, 8})
	if got := concatBlocks(cov.Blocks); !slices.Equal(got, []int{10, 2, 3, 5, 11, 2, 7, 8}) {
		t.Errorf("Blocks concatenate to %v, want the original query", got)
	}
	if len(cov.Breaks) == 0 {
		t.Errorf("expected at least one break for a query containing a foreign symbol")
	}
}

func TestSeqIDResolvesPositions(t *testing.T) {
	seqs := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8}}
	tr, err := Build(seqs...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for wantSeq, s := range seqs {
		for offset := range s {
			pos := tr.begins[wantSeq] + offset
			gotSeq, gotOffset := tr.SeqID(pos)
			if gotSeq != wantSeq || gotOffset != offset {
				t.Errorf("SeqID(%d) = (%d, %d), want (%d, %d)", pos, gotSeq, gotOffset, wantSeq, offset)
			}
		}
	}
}

// A one-symbol typo should score strictly more similar than an unrelated
// word of similar length.
func TestSimilarityStringCodedExample(t *testing.T) {
	toSeq := func(s string) []int {
		seq := make([]int, len(s))
		for i, r := range []byte(s) {
			seq[i] = int(r)
		}
		return seq
	}

	near, err := Similarity(toSeq("amrican"), toSeq("american"))
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	far, err := Similarity(toSeq("american"), toSeq("european"))
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}

	if near <= far {
		t.Errorf("Similarity(amrican, american) = %v, want strictly greater than Similarity(american, european) = %v", near, far)
	}

	distNear, err := Distance(toSeq("amrican"), toSeq("american"))
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	distFar, err := Distance(toSeq("american"), toSeq("european"))
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if distNear >= distFar {
		t.Errorf("Distance(amrican, american) = %v, want strictly less than Distance(american, european) = %v", distNear, distFar)
	}
}

// A suspect passage built from a reference plus small noise should cover
// better than an unrelated passage of comparable length.
func TestSimilarityPlagiarismStyleScenario(t *testing.T) {
	reference := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	suspect := []int{1, 2, 3, 4, 5, 6, 99, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	unrelated := []int{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36}

	tr, err := Build(reference)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	suspectScore := tr.EvaluateSimple(suspect).Score
	unrelatedScore := tr.EvaluateSimple(unrelated).Score

	if suspectScore <= unrelatedScore {
		t.Errorf("suspect covering score %v, want strictly greater than unrelated score %v", suspectScore, unrelatedScore)
	}
}
