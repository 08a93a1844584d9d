package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suzukenz/vscode-copy-open-editors/internal/copier"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the paths the picker would offer, one per line with their description",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	c, _, err := newCopier()
	if err != nil {
		return err
	}

	items, open, err := c.Items()
	if err != nil {
		return err
	}
	if !open {
		c.Notifier.Warn(copier.NoTabsMessage)
		return nil
	}

	for _, it := range items {
		fmt.Fprintf(runEnv.stdout, "%s\t%s\n", it.Label, it.Description)
	}
	return nil
}
