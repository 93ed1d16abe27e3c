package writer

import (
	"github.com/glentner/1trc/internal/builder/models"
)

// Writer interface implementation should persist one partition of rows in a
// specific format. A writer instance belongs to exactly one partition.
type Writer interface {
	// Init function should prepare the destination for writing.
	Init() error
	// WriteRow function should write row to the destination.
	WriteRow(row models.Row) error
	// Teardown function should finish writing and release the destination.
	Teardown() error
}
