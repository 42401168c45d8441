package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aweris/mygit"
)

var hashKinds = []string{string(mygit.KindBlob), string(mygit.KindTree), string(mygit.KindCommit)}

type hashObjectOptions struct {
	kind    string
	write   bool
	cid     bool
	cidBase string
}

func newHashObjectCmd() *cobra.Command {
	opts := &hashObjectOptions{}

	cmd := &cobra.Command{
		Use:   "hash-object [flags] <file>...",
		Short: "Compute object IDs and optionally store the objects",
		Long:  "Hash each file as an object of the given type and print one ID per line. With -w the objects are written to the repository containing the working directory.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashObject(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "type", "t", string(mygit.KindBlob), "object type (blob, tree, commit)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write the objects to the database")
	cmd.Flags().BoolVar(&opts.cid, "cid", false, "print content identifiers instead of hex digests")
	cmd.Flags().StringVar(&opts.cidBase, "cid-base", mygit.DefaultCIDBase, "multibase used with --cid")

	return cmd
}

func runHashObject(cmd *cobra.Command, opts *hashObjectOptions, paths []string) (err error) {
	if !slices.Contains(hashKinds, opts.kind) {
		return fmt.Errorf("invalid object type %q (want one of %v)", opts.kind, hashKinds)
	}

	var w mygit.Writer
	if opts.write {
		db, oerr := openDB(cmd)
		if oerr != nil {
			return oerr
		}
		defer func() {
			if cerr := db.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = db
	}

	digests, err := mygit.HashFiles(cmd.Context(), w, mygit.Kind(opts.kind), paths)
	if err != nil {
		return err
	}

	for _, d := range digests {
		out := d.String()
		if opts.cid {
			if out, err = d.CIDString(opts.cidBase); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
