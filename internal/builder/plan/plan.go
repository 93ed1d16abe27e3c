package plan

import (
	"github.com/glentner/1trc/internal/builder/common"
)

// Partition is one unit of work, a contiguous share of the total row count
// destined for a single output file.
type Partition struct {
	Index int
	Rows  uint64
}

// Partitions splits totalRows across fileCount partitions. Row counts differ
// by at most one, with the remainder assigned to the lowest indexes, so the
// split of 10 rows over 3 files is 4, 3, 3. Zero-row partitions are valid and
// still produce output files.
func Partitions(totalRows uint64, fileCount int) ([]Partition, error) {
	if fileCount < 1 {
		return nil, common.NewInvalidRequestError("file count should be greater than 0, got %v", fileCount)
	}

	base := totalRows / uint64(fileCount)
	remainder := totalRows % uint64(fileCount)

	partitions := make([]Partition, fileCount)

	for i := range partitions {
		partitions[i] = Partition{Index: i, Rows: base}

		if uint64(i) < remainder {
			partitions[i].Rows++
		}
	}

	return partitions, nil
}
