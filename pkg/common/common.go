// 19 Oct 2026

// Package common has the bits shared by everything else: exit codes,
// the logger plumbing and a helper for writing test files.
package common

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// NStruct is the number of structures a submission carries per target.
const NStruct = 5

// Logger returns l, or if l is nil, a logger which throws everything away.
// Library functions call this so callers may pass nil.
func Logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	d := logrus.New()
	d.SetOutput(io.Discard)
	return d
}

// NewLogger sets up a logger writing to w. With asJSON we get one json
// object per line, which is what the cluster log collectors want.
func NewLogger(w io.Writer, debug, asJSON bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if asJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
