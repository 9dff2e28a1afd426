/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokscss/internal/logger"
	"bennypowers.dev/tokscss/testutil"
)

func runValidate(t *testing.T, fixture string) (string, error) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	cmd := newCmd()
	cmd.Flags().String("root", "/project", "")
	var out bytes.Buffer
	cmd.SetOut(&out)

	mfs := testutil.NewFixtureFS(t, fixture, "/project")
	err := run(cmd, mfs, nil)
	return out.String(), err
}

func TestRun_Clean(t *testing.T) {
	out, err := runValidate(t, "fixtures/figma")
	require.NoError(t, err)
	assert.Equal(t, "/project/tokens.json: 7 color tokens, no problems\n", out)
}

func TestRun_ReportsProblems(t *testing.T) {
	out, err := runValidate(t, "fixtures/edge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 problem(s)")

	assert.Contains(t, out, "colors.dark-mode.bg: variable $colors-dark-mode-bg is also generated by colors.Dark Mode.bg")
	assert.Contains(t, out, "colors.broken: #xyz is not a valid color")
}

func TestRun_MissingInput(t *testing.T) {
	_, err := runValidate(t, "fixtures/config/json")
	require.Error(t, err)
}
