// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// package cli wires the pwnedcheck command line interface. The root
// command with no subcommand launches the interactive TUI; the `check`
// and `generate` subcommands expose the same core operations for
// scripting.
package cli
