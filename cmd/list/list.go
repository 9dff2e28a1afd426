/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokscss.
package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokscss/cmd/cmdutil"
	"bennypowers.dev/tokscss/convert"
	"bennypowers.dev/tokscss/extract"
	tokfs "bennypowers.dev/tokscss/fs"
	"bennypowers.dev/tokscss/scss"
)

// Cmd is the list cobra command.
var Cmd = newCmd()

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [input]",
		Short: "List the color variables a token document produces",
		Long:  `List the SCSS variables generate would write, in output order, without writing anything.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, tokfs.NewOSFileSystem(), args)
		},
	}

	cmdutil.AddInputFlags(cmd)
	cmd.Flags().String("format", "table", "Output format: table, json, names")
	cmd.Flags().String("category", "", "Only list one category")
	cmd.Flags().Bool("no-swatch", false, "Omit 24-bit color swatches from the table")
	return cmd
}

// Row is one listed variable.
type Row struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

func run(cmd *cobra.Command, filesystem tokfs.FileSystem, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	category, _ := cmd.Flags().GetString("category")
	noSwatch, _ := cmd.Flags().GetBool("no-swatch")

	opts, err := cmdutil.ResolveOptions(cmd, filesystem, args)
	if err != nil {
		return err
	}
	entries, err := convert.Extract(filesystem, opts)
	if err != nil {
		return err
	}

	rows := computeRows(entries, category)
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return outputJSON(out, rows)
	case "names":
		for _, r := range rows {
			fmt.Fprintln(out, r.Name)
		}
		return nil
	case "table":
		outputTable(out, rows, !noSwatch)
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected table, json or names", format)
	}
}

// computeRows orders entries the way generate writes them: grouped by
// category, categories in first-seen order.
func computeRows(entries []extract.Entry, category string) []Row {
	rows := make([]Row, 0, len(entries))
	for _, g := range scss.GroupEntries(entries) {
		if category != "" && g.Category != category {
			continue
		}
		for _, e := range g.Entries {
			rows = append(rows, Row{
				Name:     e.Name,
				Value:    e.Value,
				Category: g.Category,
				Path:     e.DotPath(),
			})
		}
	}
	return rows
}

func outputJSON(w io.Writer, rows []Row) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling rows: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputTable(w io.Writer, rows []Row, swatches bool) {
	nameW, catW := 4, 8 // header widths
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		catW = max(catW, len(r.Category))
	}

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameW, "Name", catW, "Category", "Value")
	for _, r := range rows {
		swatch := ""
		if swatches {
			swatch = colorSwatch(r.Value)
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s%s\n", nameW, r.Name, catW, r.Category, swatch, r.Value)
	}
}

// colorSwatch returns a 24-bit ANSI sample of value with black or white
// text, whichever reads better, or "" if value is not a color.
func colorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	fg := "0;0;0"
	if l, _, _ := (colorful.Color{R: c.R, G: c.G, B: c.B}).Lab(); l < 0.5 {
		fg = "255;255;255"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%d;38;2;%sm Aa \x1b[0m ", r, g, b, fg)
}
