// 19 Oct 2026

// Package msa finds and reads the multiple sequence alignment that goes
// with a target. Alignments live in one directory, one file per target,
// called <target_id>.MSA.fasta, possibly gzip'd or zstd'd.
package msa

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/zwrap"
)

// Suffix is appended to a target id to get the file name.
const Suffix = ".MSA.fasta"

// compressed suffixes we try if the plain file is not there
var zSuffixes = []string{".gz", ".zst"}

// Path is where we expect the alignment for targetID.
func Path(dir, targetID string) string {
	return filepath.Join(dir, targetID+Suffix)
}

// Load reads the alignment for a target. If there is no file, we return
// ok == false and no error. Anything else that goes wrong is an error.
func Load(targetID, dir string, log logrus.FieldLogger) (content string, ok bool, err error) {
	log = common.Logger(log).WithField("target", targetID)
	fname := Path(dir, targetID)
	log.Debug("Attempting to load MSA")

	var nseq int
	content, nseq, err = loadPlain(fname)
	if absent(err) {
		content, nseq, fname, err = loadCompressed(fname)
	}
	switch {
	case absent(err):
		log.WithField("path", Path(dir, targetID)).Info("MSA file not found")
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	log.WithFields(logrus.Fields{"path": fname, "nseq": nseq}).
		Infof("Loaded MSA with %d sequences", nseq)
	return content, true, nil
}

// absent is true if there is no file. A plain file in place of the
// directory counts as no file.
func absent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func loadPlain(fname string) (string, int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return "", 0, err
	}
	defer fp.Close()
	return readMapped(fp)
}

// loadCompressed tries each compressed name in turn. It returns the
// not-exist error if none are there.
func loadCompressed(base string) (string, int, string, error) {
	for _, z := range zSuffixes {
		fname := base + z
		b, err := zwrap.ReadAll(fname)
		if absent(err) {
			continue
		}
		if err != nil {
			return "", 0, fname, err
		}
		return string(b), bytes.Count(b, hdrMark), fname, nil
	}
	return "", 0, base, fs.ErrNotExist
}
