// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package hibp

import "testing"

func TestMatch_Found(t *testing.T) {
	candidates := []Candidate{
		{Suffix: "0018A45C4D1DEF81644B54AB7F969B88D65", Occurrences: 10},
		{Suffix: "1E4C9B93F3F0682250B6CF8331B7EE68FD8", Occurrences: 3861493},
		{Suffix: "011053FD0102E94D6AE2F8B83D76FAF94F6", Occurrences: 1},
	}

	res := Match("5BAA6", "1E4C9B93F3F0682250B6CF8331B7EE68FD8", candidates)
	if !res.Found {
		t.Fatal("expected a match")
	}
	if res.FullHash != "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8" {
		t.Fatalf("FullHash = %q", res.FullHash)
	}
	if res.Occurrences != 3861493 {
		t.Fatalf("Occurrences = %d, want 3861493", res.Occurrences)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	candidates := []Candidate{
		{Suffix: "1e4c9b93f3f0682250b6cf8331b7ee68fd8", Occurrences: 42},
	}
	res := Match("5BAA6", "1E4C9B93F3F0682250B6CF8331B7EE68FD8", candidates)
	if !res.Found || res.Occurrences != 42 {
		t.Fatalf("lowercase candidate suffix did not match: %+v", res)
	}
}

func TestMatch_NotFound(t *testing.T) {
	candidates := []Candidate{
		{Suffix: "0018A45C4D1DEF81644B54AB7F969B88D65", Occurrences: 10},
	}
	if res := Match("5BAA6", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", candidates); res.Found {
		t.Fatalf("unexpected match: %+v", res)
	}
}

func TestMatch_EmptyCandidates(t *testing.T) {
	if res := Match("5BAA6", "1E4C9B93F3F0682250B6CF8331B7EE68FD8", nil); res.Found {
		t.Fatalf("match against empty range: %+v", res)
	}
}

func TestMatch_DoesNotMutate(t *testing.T) {
	candidates := []Candidate{
		{Suffix: "aaa", Occurrences: 1},
		{Suffix: "bbb", Occurrences: 2},
	}
	before := make([]Candidate, len(candidates))
	copy(before, candidates)

	Match("5BAA6", "bbb", candidates)

	for i := range candidates {
		if candidates[i] != before[i] {
			t.Fatalf("candidate %d mutated: %+v -> %+v", i, before[i], candidates[i])
		}
	}
}
