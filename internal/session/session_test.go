package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
)

const sampleYAML = `
workspaceFolders:
  - uri: file:///home/me/project
tabGroups:
  - viewColumn: 1
    tabs:
      - label: foo.ts
        input: {kind: text, uri: file:///home/me/project/foo.ts}
      - label: foo.ts ↔ HEAD
        input: {kind: diff, original: "git:/home/me/project/foo.ts", modified: file:///home/me/project/foo.ts}
  - viewColumn: 2
    tabs:
      - input: {kind: text, uri: file:///home/me/project/bar.js}
textDocuments:
  - uri: file:///home/me/project/foo.ts
    languageId: typescript
`

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	require.Len(t, s.WorkspaceFolders(), 1)
	assert.Equal(t, editor.URI("file:///home/me/project"), s.WorkspaceFolders()[0].URI)

	groups, err := s.TabGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].ViewColumn)
	require.Len(t, groups[0].Tabs, 2)
	assert.Equal(t, editor.InputText, groups[0].Tabs[0].Input.Kind)
	assert.Equal(t, editor.InputDiff, groups[0].Tabs[1].Input.Kind)
	assert.Equal(t, editor.URI("file:///home/me/project/bar.js"), groups[1].Tabs[0].Input.URI)

	require.Len(t, s.TextDocuments(), 1)
	assert.Equal(t, "typescript", s.TextDocuments()[0].LanguageID)
}

func TestDecodeJSON(t *testing.T) {
	doc := `{
  "workspaceFolders": [{"uri": "/work"}],
  "tabGroups": [{"tabs": [{"input": {"kind": "text", "uri": "/work/a.go"}}]}],
  "textDocuments": [{"uri": "/work/a.go", "languageId": "go"}]
}`
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	groups, _ := s.TabGroups()
	require.Len(t, editor.AllTabs(groups), 1)
	assert.Equal(t, "go", s.TextDocuments()[0].LanguageID)
}

func TestDecodeEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "  \n\t\n"} {
		s, err := Decode(strings.NewReader(doc))
		require.NoError(t, err)
		groups, err := s.TabGroups()
		require.NoError(t, err)
		assert.Empty(t, editor.AllTabs(groups))
		assert.Empty(t, s.WorkspaceFolders())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed", "tabGroups: [", "failed to parse session"},
		{"missing kind", "tabGroups:\n  - tabs:\n      - label: x\n", "input kind is required"},
		{"text without uri", "tabGroups:\n  - tabs:\n      - input: {kind: text}\n", "needs a uri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeUnknownKindIsKept(t *testing.T) {
	s, err := Decode(strings.NewReader("tabGroups:\n  - tabs:\n      - input: {kind: chat}\n"))
	require.NoError(t, err)
	groups, _ := s.TabGroups()
	require.Len(t, groups[0].Tabs, 1)
	assert.False(t, groups[0].Tabs[0].IsText())
}

func TestDecodeTooLarge(t *testing.T) {
	big := strings.Repeat("#", maxSessionSize+1)
	_, err := Decode(strings.NewReader(big))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestWithWorkspace(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	dir := filepath.FromSlash("/other/root")
	c := s.WithWorkspace(dir)

	require.Len(t, c.WorkspaceFolders(), 1)
	assert.Equal(t, dir, c.WorkspaceFolders()[0].URI.FSPath())
	assert.Equal(t, editor.URI("file:///home/me/project"), s.WorkspaceFolders()[0].URI, "original must be untouched")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	groups, _ := s.TabGroups()
	assert.Len(t, editor.AllTabs(groups), 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open session")
}

func TestLoadStdinPiped(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.WriteString(sampleYAML)
		_ = w.Close()
	}()

	s, err := LoadStdin(r)
	require.NoError(t, err)
	groups, _ := s.TabGroups()
	assert.Len(t, editor.AllTabs(groups), 3)
}

func TestLoadStdinPipedEmpty(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_ = w.Close()

	s, err := LoadStdin(r)
	require.NoError(t, err)
	groups, _ := s.TabGroups()
	assert.Empty(t, editor.AllTabs(groups))
}
