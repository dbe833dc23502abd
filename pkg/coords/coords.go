// Package coords pulls the 3D coordinates for one target out of a
// labels table. The table has a row per residue with an ID of the form
// <target_id>_<resid> and columns x_1, y_1, z_1, x_2, ... for each
// structure. We give back one n x 3 matrix per structure.
package coords

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"
	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/table"
)

// Column names in the labels table
const (
	IDCol    = "ID"
	ResidCol = "resid"
)

// Structures maps a structure index ("1", "2", ...) to its coordinates.
// Row i of a matrix is residue i, columns are x, y and z.
type Structures map[string]*matrix.FMatrix2d

// candidates are the structure indices suggested by x_ columns. As with
// the files we get, the index is whatever comes after the first
// underscore, up to the next one.
func candidates(tbl *table.Table) []string {
	var idx []string
	for _, col := range tbl.Columns() {
		if !strings.HasPrefix(col, "x_") {
			continue
		}
		i := strings.Split(col, "_")[1]
		if !slices.Contains(idx, i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// complete says if all three coordinate columns are there.
func complete(tbl *table.Table, idx string) bool {
	for _, c := range []string{"x_", "y_", "z_"} {
		if !tbl.HasColumn(c + idx) {
			return false
		}
	}
	return true
}

// Indices returns the structure indices with all of x, y and z present,
// in the order of the table's columns.
func Indices(tbl *table.Table) []string {
	var ret []string
	for _, i := range candidates(tbl) {
		if complete(tbl, i) {
			ret = append(ret, i)
		}
	}
	return ret
}

// targetRows finds the rows of a target, sorted by residue number.
// Rows whose resid cannot be read go to the end, in file order.
func targetRows(tbl *table.Table, targetID string, log logrus.FieldLogger) []int {
	prefix := targetID + "_"
	type rowres struct {
		row, resid int
		ok         bool
	}
	var rr []rowres
	for i := 0; i < tbl.Len(); i++ {
		if !strings.HasPrefix(tbl.Cell(i, IDCol), prefix) {
			continue
		}
		n, err := tbl.Int(i, ResidCol)
		if err != nil {
			log.WithError(err).Warn("Bad residue number")
		}
		rr = append(rr, rowres{row: i, resid: n, ok: err == nil})
	}
	sort.SliceStable(rr, func(a, b int) bool {
		if rr[a].ok != rr[b].ok {
			return rr[a].ok
		}
		return rr[a].ok && rr[a].resid < rr[b].resid
	})
	rows := make([]int, len(rr))
	for i, r := range rr {
		rows[i] = r.row
	}
	return rows
}

// Extract gets the coordinates for every structure of a target. No rows
// for the target is not an error. We just return an empty map.
// Structures missing a y or z column are skipped with a warning.
func Extract(tbl *table.Table, targetID string, log logrus.FieldLogger) Structures {
	log = common.Logger(log).WithField("target", targetID)
	log.Debug("Extracting coordinates")
	structs := make(Structures)
	if !tbl.HasColumn(IDCol) {
		log.Warnf("Labels have no %s column", IDCol)
		return structs
	}
	rows := targetRows(tbl, targetID, log)
	if len(rows) == 0 {
		log.Info("No label entries found for target")
		return structs
	}
	idx := candidates(tbl)
	log.WithFields(logrus.Fields{"nres": len(rows), "nstruct": len(idx)}).
		Debug("Found residues and structures")

	for _, i := range idx {
		if !complete(tbl, i) {
			log.WithField("structure", i).Warn("Missing coordinate columns for structure")
			continue
		}
		m := matrix.NewFMatrix2d(len(rows), 3)
		for r, row := range rows {
			m.Mat[r][0] = float32(tbl.Float(row, "x_"+i))
			m.Mat[r][1] = float32(tbl.Float(row, "y_"+i))
			m.Mat[r][2] = float32(tbl.Float(row, "z_"+i))
		}
		structs[i] = m
	}
	log.WithField("nstruct", len(structs)).Infof("Extracted coordinates for %d structures", len(structs))
	return structs
}

// SortedKeys gives the structure indices in numerical order. Anything
// which is not a number sorts after the numbers, alphabetically.
func SortedKeys(s Structures) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		na, ea := strconv.Atoi(keys[a])
		nb, eb := strconv.Atoi(keys[b])
		switch {
		case ea == nil && eb == nil:
			return na < nb
		case ea == nil:
			return true
		case eb == nil:
			return false
		}
		return keys[a] < keys[b]
	})
	return keys
}
