/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokscss.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokscss/cmd/generate"
	"bennypowers.dev/tokscss/cmd/list"
	"bennypowers.dev/tokscss/cmd/validate"
	"bennypowers.dev/tokscss/cmd/version"
	"bennypowers.dev/tokscss/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokscss",
	Short: "Generate SCSS color variables from design tokens",
	Long: `tokscss reads a design-token document exported from Figma and writes its
color tokens as SCSS variables, grouped by category.

Tokens whose value is a reference to another token are skipped, as are
tokens of any type other than color.

Configuration is read from .config/tokscss.{yaml,yml,json} under --root.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project directory holding .config/tokscss.*")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress the summary and warnings")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
