// Package editor models the state an editor host exposes about its open tabs,
// workspace folders and loaded text documents.
package editor

import (
	"net/url"
	"path/filepath"
	"strings"
)

// InputKind identifies what a tab is showing.
type InputKind string

const (
	InputText     InputKind = "text"
	InputDiff     InputKind = "diff"
	InputCustom   InputKind = "custom"
	InputNotebook InputKind = "notebook"
	InputWebview  InputKind = "webview"
	InputTerminal InputKind = "terminal"
)

// TabInput describes the content behind a tab. Which fields are set depends on Kind.
type TabInput struct {
	Kind     InputKind `yaml:"kind" json:"kind"`
	URI      URI       `yaml:"uri,omitempty" json:"uri,omitempty"`
	Original URI       `yaml:"original,omitempty" json:"original,omitempty"`
	Modified URI       `yaml:"modified,omitempty" json:"modified,omitempty"`
	ViewType string    `yaml:"viewType,omitempty" json:"viewType,omitempty"`
}

// Tab is a single open editor view.
type Tab struct {
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Input TabInput `yaml:"input" json:"input"`
}

// IsText reports whether the tab shows a plain text document.
func (t Tab) IsText() bool {
	return t.Input.Kind == InputText && t.Input.URI != ""
}

// TabGroup is a set of tabs sharing one view column.
type TabGroup struct {
	ViewColumn int   `yaml:"viewColumn,omitempty" json:"viewColumn,omitempty"`
	Tabs       []Tab `yaml:"tabs" json:"tabs"`
}

// TextDocument is a document the editor currently has loaded.
type TextDocument struct {
	URI        URI    `yaml:"uri" json:"uri"`
	LanguageID string `yaml:"languageId" json:"languageId"`
}

// WorkspaceFolder is a root directory opened in the editor.
type WorkspaceFolder struct {
	URI  URI    `yaml:"uri" json:"uri"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// State is a read-only view of the editor host.
type State interface {
	TabGroups() ([]TabGroup, error)
	WorkspaceFolders() []WorkspaceFolder
	TextDocuments() []TextDocument
}

// AllTabs flattens tab groups into one sequence, group order first.
func AllTabs(groups []TabGroup) []Tab {
	var tabs []Tab
	for _, g := range groups {
		tabs = append(tabs, g.Tabs...)
	}
	return tabs
}

// URI identifies a resource. Both file:// URIs and bare paths are accepted.
type URI string

// FileURI builds a file:// URI for an absolute path.
func FileURI(path string) URI {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return URI(u.String())
}

// FSPath returns the file-system path the URI points at. Percent-encoding is
// decoded; a URI that cannot be parsed is returned unchanged.
func (u URI) FSPath() string {
	s := string(u)
	if !strings.Contains(s, "://") {
		return filepath.FromSlash(s)
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return s
	}
	p := parsed.Path
	if parsed.Host != "" && parsed.Scheme == "file" {
		// UNC share
		p = "//" + parsed.Host + p
	}
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		// /C:/dir -> C:/dir
		p = p[1:]
	}
	return filepath.FromSlash(p)
}

// String implements fmt.Stringer.
func (u URI) String() string {
	return string(u)
}
