// Package filter decides which tab paths are hidden from the picker.
package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Filter hides paths matching exclude globs or the workspace's gitignore rules.
// The zero value keeps everything.
type Filter struct {
	patterns []string
	ign      *ignore.GitIgnore
}

// Options configures New.
type Options struct {
	// Exclude holds doublestar globs matched against slash-separated paths.
	Exclude []string
	// RespectGitignore loads .gitignore and .git/info/exclude from Root.
	RespectGitignore bool
	// Root is the workspace folder. Gitignore rules need it.
	Root string
}

// New compiles opts. Invalid globs are reported here rather than at match time.
func New(opts Options) (*Filter, error) {
	f := &Filter{}
	for _, p := range opts.Exclude {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
		f.patterns = append(f.patterns, p)
	}
	if opts.RespectGitignore && opts.Root != "" {
		f.ign = loadGitIgnore(opts.Root)
	}
	return f, nil
}

// Empty reports whether the filter never excludes anything.
func (f *Filter) Empty() bool {
	return f == nil || (len(f.patterns) == 0 && f.ign == nil)
}

// Excluded reports whether path should be hidden. Both workspace-relative and
// absolute paths are accepted; gitignore rules only apply to relative paths
// that stay inside the workspace.
func (f *Filter) Excluded(path string) bool {
	if f.Empty() {
		return false
	}
	slashed := filepath.ToSlash(path)
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, slashed); ok {
			return true
		}
	}
	if f.ign != nil && !filepath.IsAbs(path) && !strings.HasPrefix(slashed, "../") {
		return f.ign.MatchesPath(slashed)
	}
	return false
}

func loadGitIgnore(root string) *ignore.GitIgnore {
	var lines []string
	for _, name := range []string{
		filepath.Join(root, ".gitignore"),
		filepath.Join(root, ".git", "info", "exclude"),
	} {
		if b, err := os.ReadFile(name); err == nil {
			lines = append(lines, strings.Split(string(b), "\n")...)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
