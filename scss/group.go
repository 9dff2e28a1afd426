/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss groups extracted color entries by category and renders them
// as SCSS variable declarations.
package scss

import (
	"strings"

	"bennypowers.dev/tokscss/extract"
)

// OtherCategory collects entries whose path has no usable second segment.
const OtherCategory = "other"

// categoryIndex is the path segment that names a category. Index 0 is the
// section key ("colors"), so index 1 is the first key inside it.
const categoryIndex = 1

// Group is one category and its entries in extraction order.
type Group struct {
	Category string
	Entries  []extract.Entry
}

// Category returns the category an entry belongs to: the path segment at
// index 1, or "other" if that segment is missing or empty.
func Category(e extract.Entry) string {
	if len(e.Path) > categoryIndex && e.Path[categoryIndex] != "" {
		return e.Path[categoryIndex]
	}
	return OtherCategory
}

// GroupEntries buckets entries by Category. Groups appear in order of each
// category's first entry; entries keep their relative order.
func GroupEntries(entries []extract.Entry) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range entries {
		category := Category(e)
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, Group{Category: category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Summary reports what a render produced.
type Summary struct {
	// Count is the number of declarations written.
	Count int

	// Categories lists category names in first-seen order.
	Categories []string
}

// Summarize builds a Summary for groups.
func Summarize(groups []Group) Summary {
	s := Summary{Categories: make([]string, 0, len(groups))}
	for _, g := range groups {
		s.Count += len(g.Entries)
		s.Categories = append(s.Categories, g.Category)
	}
	return s
}

// CategoryList joins the category names with ", ".
func (s Summary) CategoryList() string {
	return strings.Join(s.Categories, ", ")
}
