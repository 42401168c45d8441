package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aweris/mygit"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty repository",
		Long:  "Create the .git metadata directory in path (default: current directory).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	location := ""
	if len(args) > 0 {
		location = args[0]
	}

	root, err := mygit.CreateRoot(location)
	if err != nil {
		return err
	}

	work, err := filepath.Abs(filepath.Dir(root))
	if err != nil {
		work = filepath.Dir(root)
	}
	if resolved, err := filepath.EvalSymlinks(work); err == nil {
		work = resolved
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty Git repository in %s\n", work)
	return nil
}
