package fasta_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/rna3d/pkg/brokenio"
	"github.com/andrew-torda/rna3d/pkg/fasta"
	"github.com/andrew-torda/rna3d/pkg/randseq"
)

var set1 = `>R1107 query
GGGGGCCACAGCAGAAGCGUUCACGUCGCAGCCCCUGUCAGAUUCUGGUGAAUCUGCGAAUUCUGCUG
>URS0000D6A9B7_12908/1-62
GGGGGCCACAGCAGAAGCG
UUCACGUCGCAGC-CCUGU
CAG
`

func TestParse(t *testing.T) {
	recs := fasta.Parse(set1, nil)
	require.Len(t, recs, 2)
	assert.Equal(t, "R1107", recs[0].ID)
	assert.Equal(t, "query", recs[0].Desc)
	assert.Equal(t, 68, recs[0].Len())
	assert.Equal(t, "URS0000D6A9B7_12908/1-62", recs[1].ID)
	assert.Equal(t, "GGGGGCCACAGCAGAAGCGUUCACGUCGCAGC-CCUGUCAG", recs[1].Seq)
}

func TestParseEmpty(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	recs := fasta.Parse("", log)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

// A reader that fails half way must not get out of Parse as an error.
func TestParseSwallowsErrors(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(set1)), 7)
	r.SetFailAfter(30)

	recs := fasta.ParseReader(r, false, log)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), brokenio.ErrInjected)
}

func TestReadReturnsError(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(strings.NewReader(set1)), 7)
	r.SetFailAfter(0)
	_, err := fasta.Read(r)
	assert.ErrorIs(t, err, brokenio.ErrInjected)
}

func TestParseRandom(t *testing.T) {
	const nseq, slen = 300, 157
	var sb strings.Builder
	args := randseq.RandSeqArgs{Cmmt: "rand", Nseq: nseq, Len: slen, Wrtr: &sb, Width: 60}
	require.NoError(t, randseq.RandSeqMain(&args))

	recs := fasta.Parse(sb.String(), nil)
	require.Len(t, recs, nseq)
	for _, r := range recs {
		assert.Equal(t, slen, r.Len())
	}
}

func TestTitleSplit(t *testing.T) {
	tests := []struct {
		in, id, desc string
	}{
		{"> rand 1\nACGU\n", "rand", "1"},
		{">a  b\nACGU\n", "a", "b"},
		{">a\tb c\nACGU\n", "a", "b c"},
		{">only\nACGU\n", "only", ""},
		{">  x y  z \nACGU\n", "x", "y  z"},
	}
	for _, tt := range tests {
		recs := fasta.Parse(tt.in, nil)
		require.Len(t, recs, 1, tt.in)
		assert.Equal(t, tt.id, recs[0].ID, tt.in)
		assert.Equal(t, tt.desc, recs[0].Desc, tt.in)
		assert.Equal(t, "ACGU", recs[0].Seq, tt.in)
	}
}

// randseq writes "> comment n" headers, so every record should get the
// comment as its id.
func TestRandomIDs(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Cmmt: "rand", Nseq: 3, Len: 10, Wrtr: &sb}
	require.NoError(t, randseq.RandSeqMain(&args))
	recs := fasta.Parse(sb.String(), nil)
	require.Len(t, recs, 3)
	for i, r := range recs {
		assert.Equal(t, "rand", r.ID)
		assert.Equal(t, fmt.Sprint(i+1), r.Desc)
	}
}
