package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("SIDEBYSIDE_HEADLESS", "1")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatTableAlignsWideCells(t *testing.T) {
	lines := formatTable([]string{"NAME", "N"}, [][]string{{"界界", "7"}, {"ab", "12"}}, map[int]bool{1: true})
	require.Len(t, lines, 3)
	assert.Equal(t, "NAME   N", lines[0])
	assert.Equal(t, "界界   7", lines[1])
	assert.Equal(t, "ab    12", lines[2])
}

func TestFormatTableEmpty(t *testing.T) {
	assert.Nil(t, formatTable(nil, nil, nil))
}

func TestSectionsCommandListsCatalog(t *testing.T) {
	out, err := execute(t, "", "sections")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "state-management")
	assert.Contains(t, out, "todos")
}

func TestShowCommandHTML(t *testing.T) {
	out, err := execute(t, "", "show", "state", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<span style=")
	assert.Contains(t, out, "-- Angular (Angular)")
}

func TestShowCommandUnknownSection(t *testing.T) {
	_, err := execute(t, "", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestHighlightCommandReadsStdin(t *testing.T) {
	out, err := execute(t, "const a = 1;", "highlight", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, ">const</span>")
	assert.Contains(t, out, ">1</span>")
}

func TestHighlightCommandRejectsFormat(t *testing.T) {
	_, err := execute(t, "x", "highlight", "--format", "pdf")
	require.Error(t, err)
}

func TestStrengthCommand(t *testing.T) {
	out, err := execute(t, "", "strength", "Abcdef1!")
	require.NoError(t, err)
	assert.Contains(t, out, "Score 5/5")
	assert.Contains(t, out, "Very Strong")
	assert.Contains(t, out, "[x] Special character")

	out, err = execute(t, "", "strength", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "Score 1/5")
	assert.Contains(t, out, "[ ] At least 8 characters")
}

func TestLoginCommandValidates(t *testing.T) {
	_, err := execute(t, "", "login", "not-an-email", "--password", "secret1")
	require.Error(t, err)

	out, err := execute(t, "", "login", "ada@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as ada <ada@example.com>")
}

func TestLoginCommandPromptsForPassword(t *testing.T) {
	out, err := execute(t, "hunter22\n", "login", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as ada")
}

func TestWhoamiHeadlessIsSignedOut(t *testing.T) {
	out, err := execute(t, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestCopyCommandRejectsBadIndex(t *testing.T) {
	_, err := execute(t, "", "copy", "state", "x")
	require.Error(t, err)

	_, err = execute(t, "", "copy", "state", "999", "angular")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestCopyCommandRejectsUnknownSide(t *testing.T) {
	_, err := execute(t, "", "copy", "state", "1", "vue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown side")
}

func TestDefaultConfigTemplateMentionsSections(t *testing.T) {
	tpl := defaultConfigTemplate()
	for _, section := range []string{"[ui]", "[highlight]", "[clipboard]", "[fetch]", "[log]"} {
		assert.Contains(t, tpl, section)
	}
}
