// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/toeirei/pwnedcheck/internal/generator"
	"github.com/toeirei/pwnedcheck/internal/i18n"
)

// newGenerateCmd builds the `generate` subcommand.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cryptographically strong random password",
		Long: `Generates a random password drawn uniformly from letters, digits and
ASCII punctuation using a cryptographically secure source.

With --copy the password goes straight to the system clipboard instead
of being printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")
			if !cmd.Flags().Changed("length") {
				length = appConfig.Generator.Length
			}

			password, err := generator.Generate(length)
			if err != nil {
				return err
			}

			copyFlag, _ := cmd.Flags().GetBool("copy")
			if copyFlag {
				if err := clipboard.WriteAll(password); err != nil {
					return fmt.Errorf("could not copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.copied"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", generator.DefaultLength, "Length of the generated password")
	cmd.Flags().Bool("copy", false, "Copy the password to the clipboard instead of printing it")
	return cmd
}
