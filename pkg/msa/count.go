package msa

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

var hdrMark = []byte{'>'}

// CountSeqs maps a file and counts the ">" characters. This might be
// the number of sequences. It is not a parse, and a ">" in the middle
// of a comment will be counted too.
func CountSeqs(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: not a regular file", fname)
	}
	if fi.Size() == 0 { // cannot map zero bytes
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return bytes.Count(mm, hdrMark), nil
}

// readMapped returns the contents of a file and the ">" count from
// one mapping, so we only touch the file once.
func readMapped(fp *os.File) (string, int, error) {
	fi, err := fp.Stat()
	if err != nil {
		return "", 0, err
	}
	if !fi.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%s: not a regular file", fp.Name())
	}
	if fi.Size() == 0 {
		return "", 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return "", 0, err
	}
	defer mm.Unmap()
	return string(mm), bytes.Count(mm, hdrMark), nil
}
