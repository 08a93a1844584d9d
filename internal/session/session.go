// Package session decodes the editor state document handed to the CLI.
//
// The document is YAML; JSON is accepted too since it is valid YAML.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
)

const maxSessionSize = 4 * 1024 * 1024 // 4MB

var (
	// ErrNoSession indicates stdin is a terminal and no session file was given.
	ErrNoSession = errors.New("no editor session provided (pipe one on stdin or use --session)")

	// ErrTooLarge indicates the session document exceeds the size limit.
	ErrTooLarge = errors.New("session document too large (max 4MB)")
)

// Snapshot is a fixed copy of editor state. It implements editor.State.
type Snapshot struct {
	Folders   []editor.WorkspaceFolder `yaml:"workspaceFolders" json:"workspaceFolders"`
	Groups    []editor.TabGroup        `yaml:"tabGroups" json:"tabGroups"`
	Documents []editor.TextDocument    `yaml:"textDocuments" json:"textDocuments"`
}

// TabGroups implements editor.State.
func (s *Snapshot) TabGroups() ([]editor.TabGroup, error) {
	return s.Groups, nil
}

// WorkspaceFolders implements editor.State.
func (s *Snapshot) WorkspaceFolders() []editor.WorkspaceFolder {
	return s.Folders
}

// TextDocuments implements editor.State.
func (s *Snapshot) TextDocuments() []editor.TextDocument {
	return s.Documents
}

// WithWorkspace returns a copy of s whose only workspace folder is dir.
func (s *Snapshot) WithWorkspace(dir string) *Snapshot {
	c := *s
	c.Folders = []editor.WorkspaceFolder{{URI: editor.FileURI(dir)}}
	return &c
}

// Decode parses a session document. An empty document is an editor with
// nothing open. Unknown input kinds are kept and treated as non-file tabs.
func Decode(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(maxSessionSize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(data) > maxSessionSize {
		return nil, ErrTooLarge
	}

	var s Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return &s, nil
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Snapshot) validate() error {
	for gi, g := range s.Groups {
		for ti, t := range g.Tabs {
			switch t.Input.Kind {
			case editor.InputText, editor.InputCustom, editor.InputNotebook:
				if t.Input.URI == "" {
					return fmt.Errorf("tabGroups[%d].tabs[%d]: %s input needs a uri", gi, ti, t.Input.Kind)
				}
			case "":
				return fmt.Errorf("tabGroups[%d].tabs[%d]: input kind is required", gi, ti)
			}
		}
	}
	return nil
}

// Load reads the session from path, or from stdin when path is empty.
// "-" also means stdin.
func Load(path string) (*Snapshot, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open session: %w", err)
		}
		defer f.Close() //nolint:errcheck
		return Decode(f)
	}
	return LoadStdin(os.Stdin)
}

// LoadStdin decodes the session piped on f. It refuses to read from a terminal.
func LoadStdin(f *os.File) (*Snapshot, error) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil, ErrNoSession
	}
	return Decode(f)
}
