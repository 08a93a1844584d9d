// Package copier collects the paths of open editor tabs, lets the user pick
// some of them and copies the picked paths to the clipboard.
package copier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/suzukenz/vscode-copy-open-editors/internal/clipboard"
	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
	"github.com/suzukenz/vscode-copy-open-editors/internal/filter"
	"github.com/suzukenz/vscode-copy-open-editors/internal/logging"
	"github.com/suzukenz/vscode-copy-open-editors/internal/notify"
	"github.com/suzukenz/vscode-copy-open-editors/internal/picker"
)

// CommandName identifies the copy command.
const CommandName = "copyOpenEditors.copy"

// User-facing messages.
const (
	PickerTitle   = "Select Open Tabs to Copy (default: all selected)"
	NoTabsMessage = "No open tabs to copy."
)

// Picker shows items and returns the confirmed selection in list order, or
// picker.ErrDismissed.
type Picker interface {
	Pick(ctx context.Context, title string, items []picker.Item) ([]picker.Item, error)
}

// Copier runs the copy command against injected host capabilities. It keeps
// no state between runs, so one Copier may serve concurrent invocations.
type Copier struct {
	State     editor.State
	Picker    Picker
	Clipboard clipboard.Clipboard
	Notifier  notify.Notifier
	Filter    *filter.Filter
	Logger    *slog.Logger
}

// Run executes one invocation. Failures never escape: they are logged,
// reported through the Notifier and returned as FailedResult.
func (c *Copier) Run(ctx context.Context) (res Result) {
	logger := c.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logging.ForInvocation(logger).With("command", CommandName)
	notes := c.Notifier
	if notes == nil {
		notes = notify.Discard{}
	}

	defer func() {
		if r := recover(); r != nil {
			res = c.fail(logger, notes, fmt.Errorf("panic: %v", r))
		}
	}()

	items, open, err := c.Items()
	if err != nil {
		return c.fail(logger, notes, err)
	}
	if !open {
		notes.Warn(NoTabsMessage)
		return NoTabsResult{}
	}
	logger.Debug("tabs grouped", "paths", len(items))

	if !clipboard.Available(c.Clipboard) {
		return c.fail(logger, notes, clipboard.ErrUnavailable)
	}

	selected, err := c.Picker.Pick(ctx, PickerTitle, items)
	if errors.Is(err, picker.ErrDismissed) {
		logger.Debug("picker dismissed")
		return DismissedResult{}
	}
	if err != nil {
		return c.fail(logger, notes, fmt.Errorf("failed to show picker: %w", err))
	}
	if len(selected) == 0 {
		return NothingSelectedResult{}
	}

	labels := make([]string, len(selected))
	for i, it := range selected {
		labels[i] = it.Label
	}
	text := strings.Join(labels, "\n")
	if err := c.Clipboard.Write(text); err != nil {
		return c.fail(logger, notes, err)
	}

	notes.Info(fmt.Sprintf("Copied %d open tab paths to clipboard.", len(labels)))
	logger.Debug("copied", "count", len(labels))
	return CopiedResult{Count: len(labels), Text: text}
}

// Items returns the picker items for the tabs open right now. open is false
// when no tab at all is open; tabs that are not text files still count as open.
func (c *Copier) Items() (items []picker.Item, open bool, err error) {
	groups, err := c.State.TabGroups()
	if err != nil {
		return nil, false, fmt.Errorf("failed to enumerate tabs: %w", err)
	}
	tabs := editor.AllTabs(groups)
	if len(tabs) == 0 {
		return nil, false, nil
	}
	entries := GroupByPath(tabs, c.State.WorkspaceFolders())
	return c.visible(BuildItems(entries, c.State.TextDocuments())), true, nil
}

func (c *Copier) visible(items []picker.Item) []picker.Item {
	if c.Filter.Empty() {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if !c.Filter.Excluded(it.Label) {
			kept = append(kept, it)
		}
	}
	return kept
}

func (c *Copier) fail(logger *slog.Logger, notes notify.Notifier, err error) Result {
	logger.Error("copy open tabs failed", "err", err)
	notes.Error(fmt.Sprintf("Error copying tab paths: %v", err))
	return FailedResult{Err: err}
}
