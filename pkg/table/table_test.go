package table_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/rna3d/pkg/brokenio"
	"github.com/andrew-torda/rna3d/pkg/table"
)

const seqCSV = `target_id,sequence,temporal_cutoff,description,all_sequences
1SCL,GGGUGCUCAGUACGAGAGGAACCGCACCC,1995-01-26,"THE SARCIN-RICIN LOOP, A MODULAR RNA",">1SCL_1|Chain A|RRNA|Rattus norvegicus"
1RNK,GGCGCAGUGGGCUAGCGCCACUCAAAAGGCCCAU,1995-02-27,THE STRUCTURE OF AN RNA PSEUDOKNOT,
1RHT,GGGACUGACGAUCACGCAGUCUAU,1995-06-03,24-MER RNA HAIRPIN,
`

const labelCSV = `ID,resname,resid,x_1,y_1,z_1
1SCL_1,G,1,13.76,-25.974,0.102
1SCL_2,G,2,9.31,-29.638,2.669
1SCL_3,G,3,5.529,-27.813,NA
`

func writeFile(t *testing.T, name, s string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(s), 0o644))
	return fname
}

func TestLoadSequences(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	tbl, err := table.LoadSequences(writeFile(t, "train_sequences.csv", seqCSV), log)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"target_id", "sequence", "temporal_cutoff", "description", "all_sequences"}, tbl.Columns())
	assert.Equal(t, "THE SARCIN-RICIN LOOP, A MODULAR RNA", tbl.Cell(0, "description"))
	assert.Equal(t, table.String, tbl.Kind("sequence"))

	require.Len(t, hook.AllEntries(), 2)
	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "Loaded 3 sequences", last.Message)
	assert.Equal(t, 3, last.Data["rows"])
}

func TestLoadLabelsKinds(t *testing.T) {
	tbl, err := table.LoadLabels(writeFile(t, "labels.csv", labelCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, table.Int, tbl.Kind("resid"))
	assert.Equal(t, table.Float, tbl.Kind("x_1"))
	assert.Equal(t, table.Float, tbl.Kind("z_1"), "NA makes no difference to a float column")
	assert.Equal(t, table.String, tbl.Kind("resname"))
	assert.Equal(t, table.String, tbl.Kind("not_there"))

	assert.InDelta(t, -29.638, tbl.Float(1, "y_1"), 1e-12)
	assert.True(t, math.IsNaN(tbl.Float(2, "z_1")))
	assert.True(t, math.IsNaN(tbl.Float(0, "no_such")))

	n, err := tbl.Int(2, "resid")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = tbl.Int(0, "resname")
	assert.Error(t, err)
	_, err = tbl.Int(0, "nope")
	assert.ErrorIs(t, err, table.ErrNoCol)
}

// The row count has to match the number of data lines, whatever the size.
func TestRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		var sb strings.Builder
		sb.WriteString("ID,resid\n")
		for i := 0; i < n; i++ {
			sb.WriteString("T_")
			sb.WriteString(strings.Repeat("1", 1+i%3))
			sb.WriteString(",1\n")
		}
		tbl, err := table.Read(strings.NewReader(sb.String()))
		require.NoError(t, err)
		assert.Equal(t, n, tbl.Len())
	}
}

func TestIntFromFloatText(t *testing.T) {
	tbl, err := table.Read(strings.NewReader("resid\n12.0\n"))
	require.NoError(t, err)
	n, err := tbl.Int(0, "resid")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, table.Float, tbl.Kind("resid"))
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	_, err := table.LoadSequences(filepath.Join(dir, "missing.csv"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty", "", table.ErrNoHeader},
		{"duplicate", "a,b,a\n1,2,3\n", table.ErrDupCol},
		{"ragged", "a,b\n1,2\n3\n", nil},
		{"unterminated quote", "a,b\n\"1,2\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.LoadLabels(writeFile(t, "x.csv", tt.body), nil)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadCompressed(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(labelCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	zs, err := zstd.Compress(nil, []byte(labelCSV))
	require.NoError(t, err)

	for name, data := range map[string][]byte{"labels.csv.gz": gz.Bytes(), "labels.csv.zst": zs} {
		tbl, err := table.LoadLabels(writeFile(t, name, string(data)), nil)
		require.NoError(t, err, name)
		assert.Equal(t, 3, tbl.Len(), name)
		assert.Equal(t, "1SCL_2", tbl.Cell(1, "ID"), name)
	}
}

func TestReadBrokenInput(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(labelCSV)), 1)
	r.SetFailAfter(20)
	_, err := table.Read(r)
	assert.ErrorIs(t, err, brokenio.ErrInjected)
}

func TestRowAndWrite(t *testing.T) {
	tbl, err := table.Read(strings.NewReader(seqCSV))
	require.NoError(t, err)
	row := tbl.Row(1)
	assert.Equal(t, "1RNK", row["target_id"])
	assert.Equal(t, "", row["all_sequences"])
	assert.Equal(t, 1, tbl.ColIndex("sequence"))
	assert.Equal(t, -1, tbl.ColIndex("resid"))

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))
	again, err := table.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), again.Columns())
	assert.Equal(t, tbl.Row(0), again.Row(0))
}

func TestBOM(t *testing.T) {
	tbl, err := table.Read(strings.NewReader("\ufefftarget_id,sequence\nA,ACG\n"))
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("target_id"))
}

// A quote inside an unquoted field is kept as text.
func TestStrayQuotes(t *testing.T) {
	in := seqCSV + `T1,ACG,2020-01-01,the 5" end of "tRNA",
T2,GU,2020-01-02,"quoted, with ""inner"" quotes",
`
	tbl, err := table.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 5, tbl.Len())
	assert.Equal(t, `the 5" end of "tRNA"`, tbl.Cell(3, "description"))
	assert.Equal(t, `quoted, with "inner" quotes`, tbl.Cell(4, "description"))
	assert.Equal(t, "GU", tbl.Cell(4, "sequence"))
}
