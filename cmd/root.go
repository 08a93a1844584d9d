package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/suzukenz/vscode-copy-open-editors/internal/clipboard"
	"github.com/suzukenz/vscode-copy-open-editors/internal/config"
	"github.com/suzukenz/vscode-copy-open-editors/internal/copier"
	"github.com/suzukenz/vscode-copy-open-editors/internal/editor"
	"github.com/suzukenz/vscode-copy-open-editors/internal/filter"
	"github.com/suzukenz/vscode-copy-open-editors/internal/logging"
	"github.com/suzukenz/vscode-copy-open-editors/internal/notify"
	"github.com/suzukenz/vscode-copy-open-editors/internal/picker"
	"github.com/suzukenz/vscode-copy-open-editors/internal/session"
)

// ExitCodeFailed is returned when the copy failed after the user was told why.
const ExitCodeFailed = 1

// ErrFailed indicates the copy failed. The error was already reported, so
// main should exit without printing it again.
var ErrFailed = errors.New("copy failed")

var Version = "dev"

// options holds the flags shared by copy and list.
type options struct {
	sessionPath string
	workspace   string
	configPath  string
	exclude     []string
	gitignore   bool
	acceptAll   bool
	print       bool
	noColor     bool
	debug       bool
	showConfig  bool
}

var opts options

// env is everything a command needs from the process. Tests replace it.
type env struct {
	stdout io.Writer
	stderr io.Writer
	load   func(path string) (*session.Snapshot, error)
	picker func(cfg *config.Config, noColor bool) copier.Picker
	clip   clipboard.Clipboard
}

func defaultEnv() env {
	return env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		load:   session.Load,
		picker: func(cfg *config.Config, noColor bool) copier.Picker {
			return picker.Terminal{Theme: cfg.Theme.ToTheme(), NoColor: noColor}
		},
		clip: clipboard.System{},
	}
}

var runEnv = defaultEnv()

var rootCmd = &cobra.Command{
	Use:   "copy-open-editors",
	Short: "Copy the paths of open editor tabs to the clipboard",
	Long: `copy-open-editors reads the editor's open tabs from a session document,
lets you pick among them in a multi-select list (all selected by default)
and copies the picked paths, relative to the workspace root, to the clipboard.

The session document is YAML or JSON, piped on stdin or passed with --session.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runCopy,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var copyCmd = &cobra.Command{
	Use:     "copy",
	Aliases: []string{copier.CommandName},
	Short:   "Pick open tabs and copy their paths (default command)",
	Args:    cobra.NoArgs,
	RunE:    runCopy,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.sessionPath, "session", "s", "", "session document to read instead of stdin (- for stdin)")
	pf.StringVarP(&opts.workspace, "workspace", "w", "", "workspace folder to resolve paths against, overriding the session")
	pf.StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	pf.StringArrayVarP(&opts.exclude, "exclude", "x", nil, "hide paths matching this glob (repeatable)")
	pf.BoolVar(&opts.gitignore, "respect-gitignore", false, "hide paths ignored by the workspace .gitignore")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&opts.debug, "debug", false, "write debug records to the diagnostic log")

	for _, c := range []*cobra.Command{rootCmd, copyCmd} {
		c.Flags().BoolVarP(&opts.acceptAll, "all", "a", false, "copy every path without showing the picker")
		c.Flags().BoolVarP(&opts.print, "print", "p", false, "print the paths to stdout instead of the clipboard")
	}
	rootCmd.Flags().BoolVar(&opts.showConfig, "config-path", false, "show config file path")

	rootCmd.AddCommand(copyCmd, listCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runCopy(cmd *cobra.Command, _ []string) error {
	if opts.showConfig {
		fmt.Fprintln(runEnv.stdout, config.Path())
		return nil
	}

	c, cfg, err := newCopier()
	if err != nil {
		return err
	}

	if opts.acceptAll {
		c.Picker = picker.Preselected{}
	} else {
		c.Picker = runEnv.picker(cfg, opts.noColor || cfg.NoColor)
	}
	if opts.print {
		c.Clipboard = clipboard.Writer{W: runEnv.stdout}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if _, failed := c.Run(ctx).(copier.FailedResult); failed {
		return ErrFailed
	}
	return nil
}

// newCopier loads config and the session and assembles a Copier with every
// dependency except the picker.
func newCopier() (*copier.Copier, *config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	snap, err := runEnv.load(opts.sessionPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.workspace != "" {
		abs, err := filepath.Abs(opts.workspace)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid workspace: %w", err)
		}
		snap = snap.WithWorkspace(abs)
	}

	f, err := filter.New(filter.Options{
		Exclude:          append(append([]string(nil), cfg.Exclude...), opts.exclude...),
		RespectGitignore: opts.gitignore || cfg.RespectGitignore,
		Root:             workspaceRoot(snap),
	})
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(&logging.Config{
		Output: runEnv.stderr,
		Level:  slog.LevelWarn,
		Debug:  opts.debug || cfg.Debug,
	})

	return &copier.Copier{
		State:     snap,
		Clipboard: runEnv.clip,
		Notifier:  notify.NewTerminal(runEnv.stderr, opts.noColor || cfg.NoColor),
		Filter:    f,
		Logger:    logger,
	}, cfg, nil
}

func workspaceRoot(s editor.State) string {
	folders := s.WorkspaceFolders()
	if len(folders) == 0 {
		return ""
	}
	return folders[0].URI.FSPath()
}
