package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/rna3d/pkg/fasta"
	"github.com/andrew-torda/rna3d/pkg/msa"
)

func msaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msa target_id",
		Short: "Load a target's alignment and list its sequences",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			content, ok, err := msa.Load(id, a.v.GetString("msa-dir"), a.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "no alignment for", id)
				return nil
			}
			recs := fasta.Parse(content, a.log)
			fmt.Fprintf(out, "%s: %d sequences\n", id, len(recs))
			limit := a.v.GetInt("max")
			for i, r := range recs {
				if limit > 0 && i >= limit {
					break
				}
				fmt.Fprintf(out, "%s\t%d\n", r.ID, r.Len())
			}
			return nil
		},
	}
	cmd.Flags().String("msa-dir", ".", "Directory holding <target_id>.MSA.fasta files")
	cmd.Flags().Int("max", 0, "List at most this many sequences, 0 for all")
	return cmd
}
