package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aweris/mygit"
)

type catFileOptions struct {
	pretty bool
	kind   bool
	size   bool
}

func newCatFileCmd() *cobra.Command {
	opts := &catFileOptions{}

	cmd := &cobra.Command{
		Use:   "cat-file (-p | -t | -s) <object>",
		Short: "Show content, type or size of an object",
		Long:  "Read an object by hex digest or content identifier from the repository containing the working directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatFile(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty-print", "p", false, "print the object content")
	cmd.Flags().BoolVarP(&opts.kind, "type", "t", false, "print the object type")
	cmd.Flags().BoolVarP(&opts.size, "size", "s", false, "print the object size")
	cmd.MarkFlagsMutuallyExclusive("pretty-print", "type", "size")
	cmd.MarkFlagsOneRequired("pretty-print", "type", "size")

	return cmd
}

func runCatFile(cmd *cobra.Command, opts *catFileOptions, name string) (err error) {
	d, err := mygit.ParseObjectName(name)
	if err != nil {
		return err
	}

	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	obj, err := db.Read(d)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.pretty:
		_, err = out.Write(obj.Payload)
	case opts.kind:
		_, err = fmt.Fprintln(out, obj.Kind)
	case opts.size:
		_, err = fmt.Fprintln(out, len(obj.Payload))
	}
	return err
}
