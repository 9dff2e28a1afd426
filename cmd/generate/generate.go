/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokscss.
package generate

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokscss/cmd/cmdutil"
	"bennypowers.dev/tokscss/convert"
	tokfs "bennypowers.dev/tokscss/fs"
	"bennypowers.dev/tokscss/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = newCmd()

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Write color tokens as SCSS variables",
		Long: `Read a token document and write its color tokens as SCSS variables.

Only tokens with "type": "color" and a literal "#..." value are written.
Alpha channels are dropped, so "#1A2B3Cff" becomes "#1A2B3C".

Examples:
  # Use paths from .config/tokscss.yaml (or tokens.json -> _colors.scss)
  tokscss generate

  # Explicit paths
  tokscss generate design/enfineitz-figma.tokens.json -o src/_colors-figma.scss

  # Print instead of writing
  tokscss generate tokens.json --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, tokfs.NewOSFileSystem(), args)
		},
	}

	cmdutil.AddInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Output file (default: from config, or _colors.scss)")
	cmd.Flags().String("title", "", "First banner line of the generated file")
	cmd.Flags().Bool("stdout", false, "Print the stylesheet instead of writing it")
	return cmd
}

func run(cmd *cobra.Command, filesystem tokfs.FileSystem, args []string) error {
	opts, err := cmdutil.ResolveOptions(cmd, filesystem, args)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		result, err := convert.Convert(filesystem, opts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(result.SCSS)
		return err
	}

	logger.Info("Reading %q from %s", opts.Section, opts.Input)
	result, err := convert.Run(filesystem, opts)
	if err != nil {
		return err
	}

	logger.Success("Generated %d color variables in %s", result.Summary.Count, opts.Output)
	logger.Success("Categories: %s", result.Summary.CategoryList())
	return nil
}
