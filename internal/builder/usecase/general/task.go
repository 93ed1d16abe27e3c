package general

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output"
	"github.com/glentner/1trc/internal/builder/plan"
	"github.com/glentner/1trc/internal/builder/rows"
	"github.com/glentner/1trc/internal/builder/stations"
	"github.com/glentner/1trc/internal/builder/usecase"
	"github.com/glentner/1trc/internal/builder/usecase/general/progress"
)

const TTL = 5 * time.Minute

// Task type is implementation of one build from usecase.
type Task struct {
	config      *models.BuildConfig
	ID          string
	pool        []stations.Station
	partitions  []plan.Partition
	outcomes    []models.PartitionOutcome
	progress    *progress.Handler
	runMutex    *sync.Mutex
	statusMutex *sync.RWMutex
	finished    bool
	result      *models.BuildResult
}

// NewTask function creates context for one build job. Planning and station
// pool selection happen here, so invalid requests fail before any worker
// starts.
func NewTask(cfg usecase.TaskConfig) (*Task, error) {
	taskID := uuid.NewString()

	buildConfig := cfg.BuildConfig

	if cfg.HTTPDelivery {
		buildConfig.Output.Path = filepath.Join(taskID, buildConfig.Output.Path)
	}

	stationCount := buildConfig.StationCount
	if stationCount == 0 {
		stationCount = stations.ReferenceCount()
	}

	pool, err := stations.SelectPool(stationCount, buildConfig.Spread, buildConfig.RandomSeed)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to select station pool")
	}

	partitions, err := plan.Partitions(buildConfig.TotalRows, buildConfig.FileCount)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to plan partitions")
	}

	return &Task{
		config:      buildConfig,
		ID:          taskID,
		pool:        pool,
		partitions:  partitions,
		outcomes:    make([]models.PartitionOutcome, len(partitions)),
		progress:    progress.NewHandler(buildConfig.TotalRows),
		runMutex:    &sync.Mutex{},
		statusMutex: &sync.RWMutex{},
		finished:    false,
		result:      nil,
	}, nil
}

// RunTask function starts writing all partitions in the background.
func (t *Task) RunTask(ctx context.Context, callback func()) {
	started := make(chan struct{})

	go func() {
		t.runMutex.Lock()
		defer t.runMutex.Unlock()

		t.statusMutex.Lock()
		t.finished = false
		t.result = nil
		t.statusMutex.Unlock()

		started <- struct{}{}

		result := t.runTask(ctx)

		t.statusMutex.Lock()
		t.finished = true
		t.result = result
		t.statusMutex.Unlock()

		time.AfterFunc(TTL, callback)
	}()

	<-started
}

func (t *Task) runTask(ctx context.Context) *models.BuildResult {
	startedAt := time.Now()

	if t.config.SeededRun {
		slog.Debug("starting build", "task", t.ID, "seed", t.config.RandomSeed)
	} else {
		// The wall-clock seed is the only way to reproduce an unseeded run,
		// so it is always reported.
		slog.Info("unseeded run", "task", t.ID, "seed", t.config.RandomSeed)
	}

	pool := common.NewWorkerPool(t.buildPartition, t.config.WorkersCount)
	pool.Start(ctx)

	for _, p := range t.partitions {
		pool.Submit(p)
	}

	pool.Stop()

	result := &models.BuildResult{
		Partitions:  t.outcomes,
		Elapsed:     time.Since(startedAt),
		Interrupted: common.CtxClosed(ctx),
	}

	slog.Debug("build finished",
		"task", t.ID,
		"rows", result.RowsWritten(),
		"files", result.FilesWritten(),
		"elapsed", result.Elapsed,
	)

	return result
}

func (t *Task) GetProgress() usecase.Progress {
	return t.progress.Get()
}

func (t *Task) GetResult() (bool, *models.BuildResult) {
	t.statusMutex.RLock()
	defer t.statusMutex.RUnlock()

	return t.finished, t.result
}

func (t *Task) WaitResult() *models.BuildResult {
	t.runMutex.Lock()
	defer t.runMutex.Unlock()

	return t.result
}

// buildPartition function writes all rows of one partition. Each worker
// writes to its own outcome slot, so no locking is needed.
func (t *Task) buildPartition(ctx context.Context, p plan.Partition) {
	path := output.PartitionPath(t.config.Output, t.config.FileCount, p.Index)

	// Partitions still queued when the run is canceled are not started,
	// their files are never created.
	if common.CtxClosed(ctx) {
		t.outcomes[p.Index] = models.PartitionOutcome{
			Index: p.Index,
			Path:  path,
			Err:   &common.ContextCancelError{},
		}

		return
	}

	outcome := models.PartitionOutcome{Index: p.Index, Path: path}
	defer func() {
		t.outcomes[p.Index] = outcome
	}()

	w, err := output.NewWriter(ctx, t.config.Output, p.Index, path)
	if err != nil {
		outcome.Err = common.NewIOFailureError(p.Index, err)

		return
	}

	if err := w.Init(); err != nil {
		outcome.Err = err

		slog.Warn("partition failed", "task", t.ID, "partition", p.Index, "error", err)

		return
	}

	stream := rows.NewStream(p, t.pool, t.config.RandomSeed)

	var sinceCheck uint64

	for {
		row, ok := stream.Next()
		if !ok {
			break
		}

		if err := w.WriteRow(row); err != nil {
			outcome.Err = err

			break
		}

		outcome.Rows++
		sinceCheck++

		// Cancellation is observed at batch granularity to keep the hot
		// loop branch-light.
		if sinceCheck == t.config.BatchSize {
			t.progress.Add(sinceCheck)
			sinceCheck = 0

			if common.CtxClosed(ctx) {
				outcome.Err = &common.ContextCancelError{}

				break
			}
		}
	}

	t.progress.Add(sinceCheck)

	if err := w.Teardown(); err != nil && outcome.Err == nil {
		outcome.Err = err
	}

	if outcome.Err != nil {
		slog.Warn("partition failed", "task", t.ID, "partition", p.Index, "error", outcome.Err)
	}
}
