package copier

import (
	"fmt"
	"path/filepath"

	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
	"github.com/suzukenz/vscode-copy-open-editors/internal/picker"
)

// UnknownLanguage is used when no open document matches a tab.
const UnknownLanguage = "unknown"

// PathEntry groups the tabs that resolve to the same relative path.
type PathEntry struct {
	Path string
	Tabs []editor.Tab
}

// RelativePath resolves abs against the first workspace folder. Without a
// folder, or when no relative path exists, abs is returned unchanged.
func RelativePath(folders []editor.WorkspaceFolder, abs string) string {
	if len(folders) == 0 {
		return abs
	}
	rel, err := filepath.Rel(folders[0].URI.FSPath(), abs)
	if err != nil {
		return abs
	}
	return rel
}

// GroupByPath keeps text tabs and groups them by resolved path, in the order
// each path is first seen.
func GroupByPath(tabs []editor.Tab, folders []editor.WorkspaceFolder) []PathEntry {
	index := make(map[string]int)
	var entries []PathEntry
	for _, tab := range tabs {
		if !tab.IsText() {
			continue
		}
		key := RelativePath(folders, tab.Input.URI.FSPath())
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, PathEntry{Path: key})
		}
		entries[i].Tabs = append(entries[i].Tabs, tab)
	}
	return entries
}

// LanguageOf returns the language of the open document pointing at the same
// file as uri, or UnknownLanguage. file:// URIs and bare paths compare equal.
func LanguageOf(docs []editor.TextDocument, uri editor.URI) string {
	path := uri.FSPath()
	for _, d := range docs {
		if d.URI.FSPath() != path {
			continue
		}
		if d.LanguageID == "" {
			break
		}
		return d.LanguageID
	}
	return UnknownLanguage
}

// Describe builds the picker description for an entry: the language of its
// first tab, plus a file count when several tabs share the path.
func Describe(e PathEntry, docs []editor.TextDocument) string {
	lang := UnknownLanguage
	if len(e.Tabs) > 0 {
		lang = LanguageOf(docs, e.Tabs[0].Input.URI)
	}
	if len(e.Tabs) > 1 {
		return fmt.Sprintf("%s (%d files)", lang, len(e.Tabs))
	}
	return lang
}

// BuildItems turns entries into picker items, all picked.
func BuildItems(entries []PathEntry, docs []editor.TextDocument) []picker.Item {
	items := make([]picker.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, picker.Item{
			Label:       e.Path,
			Description: Describe(e, docs),
			Picked:      true,
		})
	}
	return items
}
