package copier

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
)

func TestRelativePath(t *testing.T) {
	folders := []editor.WorkspaceFolder{{URI: editor.FileURI(workspace)}, {URI: editor.FileURI("/elsewhere")}}

	tests := []struct {
		name    string
		folders []editor.WorkspaceFolder
		abs     string
		want    string
	}{
		{"inside", folders, filepath.Join(workspace, "src", "a.go"), filepath.Join("src", "a.go")},
		{"root itself", folders, workspace, "."},
		{"outside", folders, filepath.FromSlash("/home/me/other/b.go"), filepath.FromSlash("../other/b.go")},
		{"only first folder counts", folders, filepath.FromSlash("/elsewhere/c.go"), filepath.FromSlash("../../../elsewhere/c.go")},
		{"no workspace", nil, filepath.FromSlash("/tmp/x.go"), filepath.FromSlash("/tmp/x.go")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativePath(tt.folders, tt.abs))
		})
	}
}

func TestGroupByPathPreservesFirstSeenOrder(t *testing.T) {
	tabs := []editor.Tab{textTab("b.go"), textTab("a.go"), textTab("b.go"), textTab("c.go"), textTab("a.go"), textTab("b.go")}

	entries := GroupByPath(tabs, []editor.WorkspaceFolder{{URI: editor.FileURI(workspace)}})

	require.Len(t, entries, 3)
	assert.Equal(t, "b.go", entries[0].Path)
	assert.Len(t, entries[0].Tabs, 3)
	assert.Equal(t, "a.go", entries[1].Path)
	assert.Len(t, entries[1].Tabs, 2)
	assert.Equal(t, "c.go", entries[2].Path)
	assert.Len(t, entries[2].Tabs, 1)
}

func TestGroupByPathKeyIsCaseSensitive(t *testing.T) {
	tabs := []editor.Tab{textTab("Readme.md"), textTab("README.md")}

	entries := GroupByPath(tabs, []editor.WorkspaceFolder{{URI: editor.FileURI(workspace)}})

	assert.Len(t, entries, 2)
}

func TestGroupByPathSkipsNonText(t *testing.T) {
	tabs := []editor.Tab{
		{Input: editor.TabInput{Kind: editor.InputNotebook, URI: "file:///n.ipynb"}},
		{Input: editor.TabInput{Kind: editor.InputTerminal}},
	}

	assert.Empty(t, GroupByPath(tabs, nil))
}

func TestLanguageOf(t *testing.T) {
	docs := []editor.TextDocument{
		doc("foo.ts", "typescript"),
		doc("empty.txt", ""),
		doc("empty.txt", "plaintext"),
	}

	assert.Equal(t, "typescript", LanguageOf(docs, textTab("foo.ts").Input.URI))
	assert.Equal(t, UnknownLanguage, LanguageOf(docs, textTab("missing.go").Input.URI))
	assert.Equal(t, UnknownLanguage, LanguageOf(docs, textTab("empty.txt").Input.URI), "first match decides")
	assert.Equal(t, UnknownLanguage, LanguageOf(nil, textTab("foo.ts").Input.URI))
}

func TestLanguageOfMixedURIForms(t *testing.T) {
	bare := editor.URI(filepath.ToSlash(filepath.Join(workspace, "foo.ts")))
	docs := []editor.TextDocument{doc("foo.ts", "typescript")}

	assert.Equal(t, "typescript", LanguageOf(docs, bare))

	bareDocs := []editor.TextDocument{{URI: bare, LanguageID: "typescript"}}
	assert.Equal(t, "typescript", LanguageOf(bareDocs, textTab("foo.ts").Input.URI))

	encoded := editor.URI("file:///home/me/project/my%20file.ts")
	spaced := []editor.TextDocument{{URI: "/home/me/project/my file.ts", LanguageID: "typescript"}}
	assert.Equal(t, "typescript", LanguageOf(spaced, encoded))
}

func TestDescribeMixedURIForms(t *testing.T) {
	bare := editor.Tab{Label: "foo.ts", Input: editor.TabInput{
		Kind: editor.InputText,
		URI:  editor.URI(filepath.ToSlash(filepath.Join(workspace, "foo.ts"))),
	}}
	tabs := []editor.Tab{bare, textTab("foo.ts")}

	entries := GroupByPath(tabs, []editor.WorkspaceFolder{{URI: editor.FileURI(workspace)}})
	require.Len(t, entries, 1)

	assert.Equal(t, "typescript (2 files)", Describe(entries[0], []editor.TextDocument{doc("foo.ts", "typescript")}))
}

func TestDescribe(t *testing.T) {
	docs := []editor.TextDocument{doc("foo.ts", "typescript")}

	single := PathEntry{Path: "foo.ts", Tabs: []editor.Tab{textTab("foo.ts")}}
	double := PathEntry{Path: "foo.ts", Tabs: []editor.Tab{textTab("foo.ts"), textTab("foo.ts")}}
	triple := PathEntry{Path: "x.go", Tabs: []editor.Tab{textTab("x.go"), textTab("x.go"), textTab("x.go")}}

	assert.Equal(t, "typescript", Describe(single, docs))
	assert.Equal(t, "typescript (2 files)", Describe(double, docs))
	assert.Equal(t, "unknown (3 files)", Describe(triple, docs))
	assert.Equal(t, UnknownLanguage, Describe(PathEntry{}, docs))
}

func TestBuildItems(t *testing.T) {
	entries := []PathEntry{
		{Path: "foo.ts", Tabs: []editor.Tab{textTab("foo.ts"), textTab("foo.ts")}},
		{Path: "bar.js", Tabs: []editor.Tab{textTab("bar.js")}},
	}

	items := BuildItems(entries, []editor.TextDocument{doc("bar.js", "javascript")})

	require.Len(t, items, 2)
	assert.Equal(t, "foo.ts", items[0].Label)
	assert.Equal(t, "unknown (2 files)", items[0].Description)
	assert.True(t, items[0].Picked)
	assert.Equal(t, "bar.js", items[1].Label)
	assert.Equal(t, "javascript", items[1].Description)
	assert.True(t, items[1].Picked)
}
