// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for pwnedcheck.
//
// Usage:
//
//	go run . [flags]
//	./pwnedcheck [flags]
//
// This launches the pwnedcheck CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/pwnedcheck/ui/cli"
)

// main is the entrypoint for the pwnedcheck CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("pwnedcheck error: %v", err)
		os.Exit(1)
	}
}
