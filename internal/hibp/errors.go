// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package hibp

import "fmt"

// NetworkError wraps any transport-level failure of a range lookup:
// dial/DNS errors, timeouts, and non-success HTTP statuses. The core
// never retries; callers decide.
type NetworkError struct {
	Prefix string
	Status int // HTTP status code when the server answered, 0 otherwise
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("range lookup for %s: unexpected status %d", e.Prefix, e.Status)
	}
	return fmt.Sprintf("range lookup for %s: %v", e.Prefix, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a malformed line in the range response: a non-empty
// line without a colon separator, or a count field that is not a
// non-negative decimal integer. The whole lookup fails; a malformed line
// is never silently skipped.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed range response line %q", e.Line)
}
