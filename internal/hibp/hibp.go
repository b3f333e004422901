// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// package hibp implements the k-anonymity breach lookup against a
// Pwned-Passwords style range API. Only the first five characters of a
// password's SHA-1 digest ever leave the process; the remote service
// answers with every known suffix sharing that prefix and the match is
// narrowed locally.
package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// PrefixLen is the split point of the hex digest. It is fixed by the
// remote service's partitioning scheme and must never change.
const PrefixLen = 5

// Split hashes a password with SHA-1 and splits the uppercase hex digest
// into the 5-character range prefix and the 35-character verification
// suffix. Concatenating the two halves reproduces the full digest. The
// empty string is a valid input; whether to reject it is the caller's
// policy.
func Split(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:PrefixLen], digest[PrefixLen:]
}

// Result is the outcome of a single breach check.
type Result struct {
	Found       bool
	FullHash    string // prefix+suffix as produced by Split; empty when not found
	Occurrences int    // times the password appears in the corpus; 0 when not found
}

// Check runs the full lookup for one password: split the digest, fetch
// the candidate range, match locally. One network round trip, no
// retries; any failure is returned to the caller untouched.
func (c *Client) Check(ctx context.Context, password string) (Result, error) {
	prefix, suffix := Split(password)
	candidates, err := c.FetchRange(ctx, prefix)
	if err != nil {
		return Result{}, err
	}
	return Match(prefix, suffix, candidates), nil
}
