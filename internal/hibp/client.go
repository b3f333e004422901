// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package hibp

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Pwned Passwords range endpoint.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// DefaultTimeout bounds a single range request end to end.
const DefaultTimeout = 10 * time.Second

// Candidate is one line of a range response: a 35-character hex suffix
// and the number of times the corresponding password was seen in
// breaches.
type Candidate struct {
	Suffix      string
	Occurrences int
}

// Client performs range lookups. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a range lookup client. Empty baseURL selects the
// public endpoint; a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchRange issues one GET for the given 5-character prefix and parses
// the line-oriented SUFFIX:COUNT response. The body is consumed as a
// stream; candidates for a hot prefix never need to fit in one buffer.
// The prefix is sent uppercase (the service is case-insensitive, the
// client commits to one case). A single attempt: transport failures,
// timeouts and non-2xx statuses come back as *NetworkError, malformed
// lines as *ParseError.
func (c *Client) FetchRange(ctx context.Context, prefix string) ([]Candidate, error) {
	if len(prefix) != PrefixLen {
		return nil, fmt.Errorf("range prefix must be %d characters, got %d", PrefixLen, len(prefix))
	}
	prefix = strings.ToUpper(prefix)

	url := c.baseURL + "/range/" + prefix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Prefix: prefix, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Prefix: prefix, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Prefix: prefix, Status: resp.StatusCode}
	}

	var candidates []Candidate
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cand, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, cand)
	}
	if err := scanner.Err(); err != nil {
		// Body cut short mid-stream is a transport failure, not a
		// format problem.
		return nil, &NetworkError{Prefix: prefix, Err: err}
	}
	return candidates, nil
}

// parseLine splits one response line at its first colon into
// (suffix, count).
func parseLine(line string) (Candidate, error) {
	suffix, countStr, ok := strings.Cut(line, ":")
	if !ok {
		return Candidate{}, &ParseError{Line: line}
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil || count < 0 {
		return Candidate{}, &ParseError{Line: line}
	}
	return Candidate{Suffix: suffix, Occurrences: count}, nil
}
