// Package submit lays out predicted structures as a submission table:
// one row per residue of each target, with NStruct sets of x, y and z.
// Whatever is missing from the predictions is filled with NaN.
package submit

import (
	"fmt"
	"math"
	"time"

	"github.com/andrew-torda/matrix"
	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/coords"
	"github.com/andrew-torda/rna3d/pkg/table"
)

// Column names in the sequences table
const (
	TargetCol   = "target_id"
	SequenceCol = "sequence"
)

// Predictions maps a target id to its predicted structures, best first.
// Each structure is an n x 3 matrix, one row per residue.
type Predictions map[string][]*matrix.FMatrix2d

// Row is one residue of the submission.
type Row struct {
	ID      string
	Resname string
	Resid   int
	X, Y, Z [common.NStruct]float32
}

// Submission is the finished table. Rows are grouped by target in the
// order targets were asked for, residues in ascending order.
type Submission struct {
	Rows []Row
}

// Stats counts what was missing while building a submission.
type Stats struct {
	Targets           int // targets asked for
	MissingTargets    int // not in the sequence table, so no rows
	MissingStructures int // residue x structure slots filled with NaN
	Rows              int
}

// Columns gives the fixed column order: ID, resname, resid, then x, y, z
// for each structure in turn.
func Columns() []string {
	cols := []string{"ID", "resname", "resid"}
	for i := 1; i <= common.NStruct; i++ {
		cols = append(cols, fmt.Sprintf("x_%d", i), fmt.Sprintf("y_%d", i), fmt.Sprintf("z_%d", i))
	}
	return cols
}

// TargetSequence finds the first row for targetID in the sequences table
// and returns it as column -> value. ok is false if there is no such row.
func TargetSequence(targetID string, seqs *table.Table, log logrus.FieldLogger) (map[string]string, bool) {
	log = common.Logger(log).WithField("target", targetID)
	log.Debug("Retrieving sequence info")
	if seqs.HasColumn(TargetCol) {
		for i := 0; i < seqs.Len(); i++ {
			if seqs.Cell(i, TargetCol) != targetID {
				continue
			}
			row := seqs.Row(i)
			log.WithField("length", len(row[SequenceCol])).Debug("Found sequence")
			return row, true
		}
	}
	log.Info("No sequence information found for target")
	return nil, false
}

// present says if structure slot has a residue i. It has to exist,
// be long enough, and have x, y and z.
func present(structs []*matrix.FMatrix2d, slot, i int) bool {
	if slot >= len(structs) || structs[slot] == nil {
		return false
	}
	m := structs[slot].Mat
	return i < len(m) && len(m[i]) >= 3
}

// Prepare builds the submission for targetIDs. Targets without a row in
// seqs are counted and left out altogether. Every residue of the others
// gets a row, whether or not there are predictions for it.
func Prepare(preds Predictions, targetIDs []string, seqs *table.Table,
	log logrus.FieldLogger) (*Submission, Stats) {
	log = common.Logger(log)
	log.WithField("ntarget", len(targetIDs)).Info("Preparing submission")
	start := time.Now()
	nan := float32(math.NaN())

	sub := &Submission{}
	stats := Stats{Targets: len(targetIDs)}
	for _, id := range targetIDs {
		info, ok := TargetSequence(id, seqs, log)
		if !ok {
			stats.MissingTargets++
			continue
		}
		structs := preds[id]
		seq, has := info[SequenceCol]
		if !has {
			log.WithField("target", id).Warnf("Sequence table has no %s column", SequenceCol)
		}
		for i, res := range []rune(seq) {
			row := Row{ID: fmt.Sprintf("%s_%d", id, i+1), Resname: string(res), Resid: i + 1}
			for slot := 0; slot < common.NStruct; slot++ {
				if !present(structs, slot, i) {
					stats.MissingStructures++
					row.X[slot], row.Y[slot], row.Z[slot] = nan, nan, nan
					continue
				}
				c := structs[slot].Mat[i]
				row.X[slot], row.Y[slot], row.Z[slot] = c[0], c[1], c[2]
			}
			sub.Rows = append(sub.Rows, row)
		}
	}
	stats.Rows = len(sub.Rows)

	log.WithFields(logrus.Fields{
		"duration":           time.Since(start).Round(time.Millisecond),
		"rows":               stats.Rows,
		"missing_targets":    stats.MissingTargets,
		"missing_structures": stats.MissingStructures,
	}).Infof("Created submission with %d rows", stats.Rows)
	return sub, stats
}

// Coords returns structure slot of a row as an Xyz.
func (r Row) Coords(slot int) coords.Xyz {
	return coords.Xyz{X: r.X[slot], Y: r.Y[slot], Z: r.Z[slot]}
}
