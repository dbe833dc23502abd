// Package fasta turns fasta formatted text into records. The decoding
// is done by biogo's fasta reader. We just take the name, description
// and letters out of each sequence it gives us.
package fasta

import (
	"errors"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/rna3d/pkg/common"
)

// Record is one entry from a fasta file. ID is the first word after the
// ">", Desc is whatever follows it on the line.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Len is the number of letters, gaps included.
func (r Record) Len() int { return len(r.Seq) }

// letters copies the sequence out of whatever biogo gave us.
func letters(s seq.Sequence) string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for i := s.Start(); i < s.End(); i++ {
		sb.WriteByte(byte(s.At(i).L))
	}
	return sb.String()
}

// Read decodes everything in rdr. On an error, it returns the
// records decoded so far along with the error.
func Read(rdr io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.RNAgapped)
	r := biofasta.NewReader(rdr, template)
	recs := []Record{}
	for {
		s, err := r.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		id, desc := splitTitle(s.Name(), s.Description())
		recs = append(recs, Record{ID: id, Desc: desc, Seq: letters(s)})
	}
}

// splitTitle re-splits a header. biogo cuts at the first space, so
// "> a b" has an empty name. The id is the first word of the title and
// the description is the rest, trimmed.
func splitTitle(name, desc string) (string, string) {
	title := strings.TrimSpace(name + " " + desc)
	i := strings.IndexAny(title, " \t")
	if i < 0 {
		return title, ""
	}
	return title[:i], strings.TrimSpace(title[i+1:])
}
