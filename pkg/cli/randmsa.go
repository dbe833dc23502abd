package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/rna3d/pkg/randseq"
)

func randmsaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "randmsa",
		Short: "Write a random RNA alignment, for testing",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ra := randseq.RandSeqArgs{
				Iseed: a.v.GetInt64("seed"),
				Cmmt:  a.v.GetString("comment"),
				Nseq:  a.v.GetInt("nseq"),
				Len:   a.v.GetInt("len"),
				NoGap: a.v.GetBool("no-gap"),
				Width: a.v.GetInt("width"),
				Wrtr:  cmd.OutOrStdout(),
			}
			if ra.Nseq < 1 || ra.Len < 1 {
				return usageErr("--nseq and --len must be positive")
			}
			if fname := a.v.GetString("out"); fname != "" && fname != "-" {
				fp, err := os.Create(fname)
				if err != nil {
					return err
				}
				defer fp.Close()
				ra.Wrtr = fp
			}
			return randseq.RandSeqMain(&ra)
		},
	}
	f := cmd.Flags()
	f.Int("nseq", 100, "Number of sequences")
	f.Int("len", 100, "Length of each sequence")
	f.Int64("seed", 1637, "Random number seed")
	f.String("comment", "rand seq", "Comment for the sequences")
	f.Bool("no-gap", false, "Do not put gaps in sequences")
	f.Int("width", 60, "Wrap sequence lines at this width, 0 for no wrapping")
	f.StringP("out", "o", "", "Output file, default standard output")
	return cmd
}
