package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/suzukenz/vscode-copy-open-editors/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrFailed) {
			os.Exit(cmd.ExitCodeFailed)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
