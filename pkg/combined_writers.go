package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans out every Write to all underlying writers.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, wErr := w.Write(p)
		if wErr != nil {
			err = multierr.Append(err, wErr)
			continue
		}
		if written != len(p) {
			err = multierr.Append(err, io.ErrShortWrite)
			continue
		}
		n = written
	}
	return n, err
}
