/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert runs the whole token-to-SCSS pipeline against a
// filesystem: read, parse, extract, group, render and write.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokscss/config"
	"bennypowers.dev/tokscss/document"
	"bennypowers.dev/tokscss/extract"
	tokfs "bennypowers.dev/tokscss/fs"
	"bennypowers.dev/tokscss/internal/logger"
	"bennypowers.dev/tokscss/scss"
)

var (
	// ErrReadInput indicates the token document could not be read.
	ErrReadInput = errors.New("cannot read token document")

	// ErrWriteOutput indicates the stylesheet could not be written.
	ErrWriteOutput = errors.New("cannot write stylesheet")
)

// Options configures a conversion.
type Options struct {
	// Input is the token document path.
	Input string

	// Output is the stylesheet path. Ignored by Convert.
	Output string

	// Section is the top-level key holding color tokens.
	Section string

	// Title replaces the first banner line.
	Title string

	// Exclude, if set, drops entries whose path it matches.
	Exclude func(path []string) bool
}

// FromConfig builds Options from a loaded config.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Input:   cfg.Input,
		Output:  cfg.Output,
		Section: cfg.Section,
		Title:   cfg.Title,
		Exclude: cfg.Excluded,
	}
}

// Result is the outcome of a conversion.
type Result struct {
	// Entries are the extracted colors in document order.
	Entries []extract.Entry

	// SCSS is the rendered stylesheet.
	SCSS []byte

	// Summary counts declarations and lists categories.
	Summary scss.Summary
}

// Extract reads the input document and returns its color entries.
// A missing section yields no entries and a warning, not an error.
func Extract(filesystem tokfs.FileSystem, opts Options) ([]extract.Entry, error) {
	data, err := filesystem.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, opts.Input, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Input, err)
	}

	section := opts.Section
	if section == "" {
		section = config.DefaultSection
	}
	node, ok := doc.Section(section)
	if !ok {
		logger.Warn("%s has no %q section", opts.Input, section)
		return nil, nil
	}

	entries := extract.Extract(node, []string{section})
	if opts.Exclude == nil {
		return entries, nil
	}

	kept := entries[:0]
	for _, e := range entries {
		if !opts.Exclude(e.Path) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// Convert extracts and renders without writing anything.
func Convert(filesystem tokfs.FileSystem, opts Options) (*Result, error) {
	entries, err := Extract(filesystem, opts)
	if err != nil {
		return nil, err
	}

	out, summary := scss.RenderEntries(entries, scss.Options{
		Title:  opts.Title,
		Source: filepath.Base(opts.Input),
	})
	return &Result{Entries: entries, SCSS: out, Summary: summary}, nil
}

// Run converts and writes the stylesheet to opts.Output, creating its
// directory if needed. Nothing is written when conversion fails.
func Run(filesystem tokfs.FileSystem, opts Options) (*Result, error) {
	result, err := Convert(filesystem, opts)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(opts.Output); dir != "." && !filesystem.Exists(dir) {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, opts.Output, err)
		}
	}
	if err := filesystem.WriteFile(opts.Output, result.SCSS, 0644); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, opts.Output, err)
	}
	return result, nil
}
