package table

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrew-torda/rna3d/pkg/common"
	"github.com/andrew-torda/rna3d/pkg/zwrap"
)

// Load reads a table from a file, which may be gzip or zstd compressed.
func Load(fname string) (*Table, error) {
	fz, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fz.Close()
	t, err := Read(fz)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return t, nil
}

// loadTimed is Load with the progress lines. what is "sequences" or
// "label entries", and only goes into the messages.
func loadTimed(fname, what string, log logrus.FieldLogger) (*Table, error) {
	log = common.Logger(log).WithField("file", fname)
	log.Infof("Loading %s", what)
	start := time.Now()
	t, err := Load(fname)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"rows":     t.Len(),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Infof("Loaded %d %s", t.Len(), what)
	return t, nil
}

// LoadSequences reads the sequence table, one row per target with at
// least target_id and sequence columns. Errors are passed back as they are.
func LoadSequences(fname string, log logrus.FieldLogger) (*Table, error) {
	return loadTimed(fname, "sequences", log)
}

// LoadLabels reads the 3D structure labels, one row per residue.
func LoadLabels(fname string, log logrus.FieldLogger) (*Table, error) {
	return loadTimed(fname, "label entries", log)
}
