// Package zwrap takes a file pointer and, if the contents are gzip or
// zstd compressed, wraps it so reads come out decompressed. Calling
// Close closes the decompressor, followed by the underlying file.
// The alignment and label files we get are often shipped as .gz or
// .zst, so every reader in this module opens its input through here.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/DataDog/zstd"
)

// Compression says what we found at the start of a stream.
type Compression byte

const (
	None Compression = iota
	Gzip
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// FpZ is what we return. Read from it, then Close it.
type FpZ struct {
	fp   io.Closer     // backing file or stream
	zrdr io.ReadCloser // decompressor, nil if the input is plain
	rdr  io.Reader     // where Read goes
	kind Compression
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fz *FpZ) Close() error {
	var errs []error
	if fz.zrdr != nil {
		errs = append(errs, fz.zrdr.Close())
	}
	errs = append(errs, fz.fp.Close())
	return errors.Join(errs...)
}

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (fz *FpZ) Read(p []byte) (int, error) { return fz.rdr.Read(p) }

// Kind tells us which decompressor, if any, was put in front of the file.
func (fz *FpZ) Kind() Compression { return fz.kind }

// sniff looks at the first bytes without consuming them.
func sniff(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(zstdMagic)) // short files just give a short slice
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	}
	return None
}

// WrapMaybe will decide if the underlying stream is compressed
// and put a decompressor in front of it if necessary. Unlike the
// gzip-only version, we never need to seek, so this is happy with
// pipes and http bodies.
func WrapMaybe(fp io.ReadCloser) (*FpZ, error) {
	br := bufio.NewReader(fp)
	fz := &FpZ{fp: fp, rdr: br, kind: sniff(br)}
	switch fz.kind {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		fz.zrdr, fz.rdr = zr, zr
	case Zstd:
		zr := zstd.NewReader(br)
		fz.zrdr, fz.rdr = zr, zr
	}
	return fz, nil
}

// Open opens a file and hands it to WrapMaybe.
func Open(fname string) (*FpZ, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fz, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return fz, nil
}

// ReadAll slurps a whole, possibly compressed, file.
func ReadAll(fname string) ([]byte, error) {
	fz, err := Open(fname)
	if err != nil {
		return nil, err
	}
	defer fz.Close()
	return io.ReadAll(fz)
}
