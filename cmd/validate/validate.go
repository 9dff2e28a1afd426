/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokscss.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokscss/cmd/cmdutil"
	"bennypowers.dev/tokscss/convert"
	tokfs "bennypowers.dev/tokscss/fs"
	"bennypowers.dev/tokscss/validator"
)

// Cmd is the validate cobra command.
var Cmd = newCmd()

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Check color tokens for name collisions and invalid values",
		Long: `Check the color tokens generate would write.

Reported problems:
  - two tokens whose paths produce the same variable name
  - values that are not valid colors after alpha stripping

generate writes these tokens regardless; validate only reports them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, tokfs.NewOSFileSystem(), args)
		},
	}

	cmdutil.AddInputFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, filesystem tokfs.FileSystem, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts, err := cmdutil.ResolveOptions(cmd, filesystem, args)
	if err != nil {
		return err
	}
	entries, err := convert.Extract(filesystem, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errs := validator.Validate(entries)
	for _, e := range errs {
		fmt.Fprintf(out, "%s: %s\n", opts.Input, e.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("found %d problem(s) in %s", len(errs), opts.Input)
	}

	if !quiet {
		fmt.Fprintf(out, "%s: %d color tokens, no problems\n", opts.Input, len(entries))
	}
	return nil
}
