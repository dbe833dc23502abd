// 31 July 2020, RNA version 19 Oct 2026

// Package randseq makes random RNA alignments for testing the readers.
// The content is not so important. What matters is the number of
// sequences, their lengths, gaps and how the lines are wrapped.
package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/andrew-torda/rna3d/pkg/common"
)

var (
	bases  = []byte{'A', 'C', 'G', 'U'}
	gapped = []byte{'A', 'C', 'G', 'U', 'A', 'C', 'G', 'U', common.GapChar}
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
	Width int       // wrap sequence lines at this width, 0 for no wrapping
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := int32(len(letters))
	for i := range ret {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// writeseq writes one sequence. n is the number of the sequence, so the
// output has comment lines "> something 1, > something 2..."
func writeseq(w *bufio.Writer, s []byte, n, width int, args *RandSeqArgs) {
	fmt.Fprintf(w, "> %s %[2]*d\n", args.Cmmt, width, n)
	if args.Width > 0 {
		for ; len(s) > args.Width; s = s[args.Width:] {
			w.Write(s[:args.Width])
			w.WriteByte('\n')
		}
	}
	w.Write(s)
	w.WriteByte('\n')
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nseq < 0 || args.Len < 0 {
		return fmt.Errorf("randseq: nseq %d and length %d must not be negative", args.Nseq, args.Len)
	}
	letters := gapped
	if args.NoGap {
		letters = bases
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprintf("%d", args.Nseq))
	w := bufio.NewWriter(args.Wrtr)
	for i := 0; i < args.Nseq; i++ {
		writeseq(w, getseq(args.Len, letters, rnd), i+1, width, args)
	}
	return w.Flush()
}
