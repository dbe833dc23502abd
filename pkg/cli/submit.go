package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/coords"
	"github.com/andrew-torda/rna3d/pkg/submit"
	"github.com/andrew-torda/rna3d/pkg/table"
)

// allTargets lists the target ids of a sequence table, first
// appearance order, no repeats.
func allTargets(seqs *table.Table) []string {
	seen := make(map[string]bool)
	var ids []string
	for i := 0; i < seqs.Len(); i++ {
		id := seqs.Cell(i, submit.TargetCol)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// readPredictions takes predictions written out in the labels layout
// and collects up to NStruct structures per target.
func readPredictions(fname string, targets []string, log logrus.FieldLogger) (submit.Predictions, error) {
	tbl, err := table.LoadLabels(fname, log)
	if err != nil {
		return nil, err
	}
	preds := make(submit.Predictions, len(targets))
	for _, id := range targets {
		s := coords.Extract(tbl, id, log)
		if len(s) == 0 {
			continue
		}
		var structs []*matrix.FMatrix2d
		for _, k := range coords.SortedKeys(s) {
			if len(structs) == common.NStruct {
				break
			}
			structs = append(structs, s[k])
		}
		preds[id] = structs
	}
	return preds, nil
}

func submitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Write a submission csv from predicted coordinates",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqFile, err := a.required("sequences")
			if err != nil {
				return err
			}
			seqs, err := table.LoadSequences(seqFile, a.log)
			if err != nil {
				return err
			}
			targets := a.v.GetStringSlice("targets")
			if len(targets) == 0 {
				targets = allTargets(seqs)
			}

			preds := submit.Predictions{}
			if pf := a.v.GetString("predictions"); pf != "" {
				if preds, err = readPredictions(pf, targets, a.log); err != nil {
					return err
				}
			}

			sub, _ := submit.Prepare(preds, targets, seqs, a.log)
			return writeSubmission(sub, a.v.GetString("out"), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.String("sequences", "", "Sequences csv (target_id, sequence, ...)")
	f.String("predictions", "", "Predicted coordinates, laid out like a labels file")
	f.StringSlice("targets", nil, "Targets to include, default all in the sequences file")
	f.StringP("out", "o", "", "Output file, default standard output")
	return cmd
}

func writeSubmission(sub *submit.Submission, fname string, stdout io.Writer) error {
	if fname == "" {
		return sub.WriteCSV(stdout)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := sub.WriteCSV(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
