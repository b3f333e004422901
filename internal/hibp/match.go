// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package hibp

import "strings"

// Match scans the candidate range for the verification suffix. The
// comparison is case-insensitive; the service returns uppercase suffixes
// but nothing depends on that. First match wins (suffixes within a range
// are unique by construction). Pure function, never mutates candidates.
func Match(prefix, suffix string, candidates []Candidate) Result {
	want := strings.ToUpper(suffix)
	for _, cand := range candidates {
		if strings.ToUpper(cand.Suffix) == want {
			return Result{
				Found:       true,
				FullHash:    prefix + suffix,
				Occurrences: cand.Occurrences,
			}
		}
	}
	return Result{}
}
