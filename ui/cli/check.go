// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/pwnedcheck/internal/i18n"
)

var (
	breachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cleanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
)

// newCheckCmd builds the `check` subcommand.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a password appears in known breach data",
		Long: `Checks a password against the breach corpus via the k-anonymity
range protocol. The password itself never leaves the machine; only the
first five characters of its SHA-1 digest are sent.

Without --password the password is read from a hidden terminal prompt
(or from stdin when not attached to a terminal).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if !cmd.Flags().Changed("password") {
				var err error
				password, err = readPassword(cmd)
				if err != nil {
					return errors.New(i18n.T("cli.read_password_failed", err))
				}
			}

			result, err := newLookupClient().Check(cmd.Context(), password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Found {
				fmt.Fprintln(out, breachedStyle.Render(i18n.T("check.found_hash", result.FullHash)))
				fmt.Fprintln(out, breachedStyle.Render(i18n.T("check.occurrences", result.Occurrences)))
			} else {
				fmt.Fprintln(out, cleanStyle.Render(i18n.T("check.not_found")))
			}
			return nil
		},
	}

	cmd.Flags().String("password", "", "Password to check (prompted when omitted)")
	return cmd
}

// readPassword reads the candidate password without echoing when stdin
// is a terminal, and falls back to a plain line read otherwise so the
// command stays scriptable.
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), i18n.T("cli.password_prompt"))
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
