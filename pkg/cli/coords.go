package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/rna3d/pkg/coords"
	"github.com/andrew-torda/rna3d/pkg/table"
)

func coordsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coords target_id",
		Short: "Show the structures for a target in a labels file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname, err := a.required("labels")
			if err != nil {
				return err
			}
			tbl, err := table.LoadLabels(fname, a.log)
			if err != nil {
				return err
			}
			s := coords.Extract(tbl, args[0], a.log)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d structures\n", args[0], len(s))
			for _, k := range coords.SortedKeys(s) {
				n, _ := s[k].Size()
				c := coords.At(s[k], 0)
				fmt.Fprintf(out, "%s\t%d residues\tfirst %.3f %.3f %.3f\n", k, n, c.X, c.Y, c.Z)
			}
			return nil
		},
	}
	cmd.Flags().String("labels", "", "Labels csv file (ID, resname, resid, x_1, ...)")
	return cmd
}
