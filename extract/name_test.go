/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import "testing"

func TestGenerateName(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{"simple", []string{"colors", "brand", "primary"}, "$colors-brand-primary"},
		{"uppercase", []string{"Colors", "Brand", "PRIMARY"}, "$colors-brand-primary"},
		{"numeric", []string{"colors", "blue", "500"}, "$colors-blue-500"},
		{"spaces", []string{"colors", "Dark Mode", "bg"}, "$colors-dark-mode-bg"},
		{"punctuation", []string{"colors", "a/b", "c.d", "e_f"}, "$colors-a-b-c-d-e-f"},
		{"keeps hyphens", []string{"colors", "on-surface"}, "$colors-on-surface"},
		{"accents", []string{"colors", "café"}, "$colors-caf-"},
		{"astral", []string{"colors", "🎨"}, "$colors---"},
		{"empty segment", []string{"colors", "", "x"}, "$colors--x"},
		{"empty path", nil, "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateName(tt.path); got != tt.want {
				t.Errorf("GenerateName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGenerateName_Collision(t *testing.T) {
	// Distinct paths may normalize to the same name; nothing dedupes them.
	a := GenerateName([]string{"colors", "dark mode"})
	b := GenerateName([]string{"colors", "Dark-Mode"})
	if a != b {
		t.Errorf("expected collision, got %q and %q", a, b)
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"#1A2B3Cff", "#1A2B3C"},
		{"#1a2b3c", "#1a2b3c"},
		{"#1A2B3C80", "#1A2B3C"},
		{"#fff", "#fff"},
		{"#", "#"},
		{"#zzzzzzzz", "#zzzzzz"},
		{"#12345é7", "#12345é"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Canonicalize(tt.raw); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
