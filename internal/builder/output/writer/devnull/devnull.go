package devnull

import (
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output/writer"
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of null writer. Rows are counted and
// discarded, which makes it useful for throughput measurement and tests.
type Writer struct {
	handler func(row models.Row) error
	rows    uint64
}

// NewWriter function creates Writer object.
func NewWriter(config *models.DevNullConfig) *Writer {
	return &Writer{
		handler: config.Handler,
	}
}

// Init does nothing.
func (w *Writer) Init() error {
	return nil
}

// WriteRow counts the row and passes it to the handler if one is set.
func (w *Writer) WriteRow(row models.Row) error {
	if w.handler != nil {
		if err := w.handler(row); err != nil {
			return err
		}
	}

	w.rows++

	return nil
}

// Rows function returns the number of rows accepted.
func (w *Writer) Rows() uint64 {
	return w.rows
}

// Teardown does nothing.
func (w *Writer) Teardown() error {
	return nil
}
