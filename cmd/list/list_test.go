/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/tokscss/extract"
	"bennypowers.dev/tokscss/internal/logger"
	"bennypowers.dev/tokscss/testutil"
)

func runList(t *testing.T, flags map[string]string) (string, error) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	cmd := newCmd()
	cmd.Flags().String("root", "/project", "")
	for k, v := range flags {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	var out bytes.Buffer
	cmd.SetOut(&out)

	mfs := testutil.NewFixtureFS(t, "fixtures/figma", "/project")
	err := run(cmd, mfs, nil)
	return out.String(), err
}

func TestComputeRows(t *testing.T) {
	entries := []extract.Entry{
		{Name: "$colors-ui-bg", Value: "#ffffff", Path: []string{"colors", "ui", "bg"}},
		{Name: "$colors-brand-a", Value: "#000001", Path: []string{"colors", "brand", "a"}},
		{Name: "$colors-ui-fg", Value: "#000000", Path: []string{"colors", "ui", "fg"}},
	}

	t.Run("grouped order", func(t *testing.T) {
		rows := computeRows(entries, "")
		var names []string
		for _, r := range rows {
			names = append(names, r.Name)
		}
		want := "$colors-ui-bg $colors-ui-fg $colors-brand-a"
		if got := strings.Join(names, " "); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		rows := computeRows(entries, "brand")
		if len(rows) != 1 || rows[0].Path != "colors.brand.a" {
			t.Errorf("unexpected rows %+v", rows)
		}
	})
}

func TestRun_Names(t *testing.T) {
	out, err := runList(t, map[string]string{"format": "names"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"$colors-brand-primary",
		"$colors-brand-secondary",
		"$colors-ui-background",
		"$colors-ui-text-muted",
		"$colors-neutral-grey-100",
		"$colors-neutral-grey-900",
		"$colors-black",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := runList(t, map[string]string{"format": "json", "category": "ui"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []Row
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Name != "$colors-ui-text-muted" || rows[1].Value != "#6B7280" || rows[1].Path != "colors.ui.Text Muted" {
		t.Errorf("unexpected row %+v", rows[1])
	}
}

func TestRun_Table(t *testing.T) {
	out, err := runList(t, map[string]string{"category": "black"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "Name") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "\x1b[48;2;0;0;0;38;2;255;255;255m") {
		t.Errorf("expected a black swatch in %q", lines[1])
	}
}

func TestRun_TableNoSwatch(t *testing.T) {
	out, err := runList(t, map[string]string{"category": "black", "no-swatch": "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape codes, got %q", out)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	if _, err := runList(t, map[string]string{"format": "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestColorSwatch(t *testing.T) {
	if got := colorSwatch("#ff0000"); got != "\x1b[48;2;255;0;0;38;2;0;0;0m Aa \x1b[0m " {
		t.Errorf("unexpected swatch %q", got)
	}
	if got := colorSwatch("#xyz"); got != "" {
		t.Errorf("expected no swatch for invalid color, got %q", got)
	}
}
