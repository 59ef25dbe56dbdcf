package stats

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Recorder appends samples to a CSV stream. The header is written with the
// first batch only.
type Recorder struct {
	out           io.Writer
	headerWritten bool
	rows          int
}

// NewRecorder returns a recorder writing to out.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Write appends samples. An empty batch writes nothing, not even the header.
func (r *Recorder) Write(samples []Sample) error {
	if len(samples) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(samples, r.out); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(samples, r.out); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}
	r.rows += len(samples)
	return nil
}

// Rows reports how many samples were written.
func (r *Recorder) Rows() int { return r.rows }
