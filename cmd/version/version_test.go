/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		Cmd.SetOut(&out)
		if err := Cmd.Flags().Set("format", "text"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.String(), "tokscss ") {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		Cmd.SetOut(&out)
		if err := Cmd.Flags().Set("format", "json"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal(out.Bytes(), &info); err != nil {
			t.Fatalf("invalid JSON %q: %v", out.String(), err)
		}
		if info["version"] == "" {
			t.Error("expected a version")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Cmd.Flags().Set("format", "yaml"); err != nil {
			t.Fatal(err)
		}
		if err := run(Cmd, nil); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
