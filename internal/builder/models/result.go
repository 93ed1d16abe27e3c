package models

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// PartitionOutcome describes how writing one partition ended.
type PartitionOutcome struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Rows  uint64 `json:"rows"`
	Err   error  `json:"-"`
}

// BuildResult is the aggregate summary of one build run.
type BuildResult struct {
	Partitions  []PartitionOutcome `json:"partitions"`
	Elapsed     time.Duration      `json:"elapsed"`
	Interrupted bool               `json:"interrupted"`
}

// RowsWritten returns the total number of rows written across all partitions,
// including rows flushed by partitions that later failed.
func (r *BuildResult) RowsWritten() uint64 {
	var total uint64

	for _, p := range r.Partitions {
		total += p.Rows
	}

	return total
}

// FilesWritten returns the number of partitions that completed successfully.
func (r *BuildResult) FilesWritten() int {
	var count int

	for _, p := range r.Partitions {
		if p.Err == nil {
			count++
		}
	}

	return count
}

// Failed returns outcomes of partitions that did not complete.
func (r *BuildResult) Failed() []PartitionOutcome {
	var failed []PartitionOutcome

	for _, p := range r.Partitions {
		if p.Err != nil {
			failed = append(failed, p)
		}
	}

	return failed
}

// Err summarizes the run as a single error, listing every failed partition,
// or nil if every partition completed and the run was not interrupted.
func (r *BuildResult) Err() error {
	failed := r.Failed()

	if len(failed) == 0 {
		if r.Interrupted {
			return errors.New("build interrupted before all partitions were dispatched")
		}

		return nil
	}

	var sb strings.Builder

	for i, p := range failed {
		sb.WriteString(p.Err.Error())

		if i != len(failed)-1 {
			sb.WriteString("; ")
		}
	}

	return errors.Errorf("%d of %d partitions failed: %s", len(failed), len(r.Partitions), sb.String())
}
