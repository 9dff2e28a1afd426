/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmdutil holds flag handling shared by the tokscss commands.
package cmdutil

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokscss/config"
	"bennypowers.dev/tokscss/convert"
	tokfs "bennypowers.dev/tokscss/fs"
)

// AddInputFlags registers the flags that select what to read.
func AddInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("section", config.DefaultSection, "Top-level key holding color tokens")
}

// ResolveOptions merges the positional input argument, command flags and
// the project config into convert options. Precedence is argument, then
// flag, then .config/tokscss.*, then defaults. Relative paths are taken
// from the --root directory.
func ResolveOptions(cmd *cobra.Command, filesystem tokfs.FileSystem, args []string) (convert.Options, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return convert.Options{}, err
	}

	v := viper.New()
	v.SetDefault("input", cfg.Input)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("section", cfg.Section)
	v.SetDefault("title", cfg.Title)
	for _, key := range []string{"output", "section", "title"} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return convert.Options{}, err
			}
		}
	}
	if len(args) > 0 {
		v.Set("input", args[0])
	}

	opts := convert.FromConfig(cfg)
	opts.Input = fromRoot(root, v.GetString("input"))
	opts.Output = fromRoot(root, v.GetString("output"))
	opts.Section = v.GetString("section")
	opts.Title = v.GetString("title")
	return opts, nil
}

func fromRoot(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
