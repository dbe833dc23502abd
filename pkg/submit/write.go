package submit

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/table"
)

// fmtCoord writes a coordinate with as few digits as get it back
// exactly. NaN becomes an empty field, which is what the scorer reads
// as missing.
func fmtCoord(x float32) string {
	if math.IsNaN(float64(x)) {
		return ""
	}
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}

// record turns a row into cells, in Columns() order.
func (r Row) record() []string {
	rec := make([]string, 0, 3+3*common.NStruct)
	rec = append(rec, r.ID, r.Resname, strconv.Itoa(r.Resid))
	for i := 0; i < common.NStruct; i++ {
		rec = append(rec, fmtCoord(r.X[i]), fmtCoord(r.Y[i]), fmtCoord(r.Z[i]))
	}
	return rec
}

// WriteCSV writes the submission with its header.
func (s *Submission) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns()); err != nil {
		return err
	}
	for _, r := range s.Rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToTable gives the submission as a generic table.
func (s *Submission) ToTable() (*table.Table, error) {
	rows := make([][]string, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = r.record()
	}
	return table.New(Columns(), rows)
}
