package general

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/logger/handlers"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/usecase"
)

func TestMain(m *testing.M) {
	slog.SetDefault(handlers.DummyLogger)

	os.Exit(m.Run())
}

func buildConfig(t *testing.T, cfg *models.BuildConfig) *models.BuildConfig {
	t.Helper()

	require.NoError(t, cfg.PostProcess())

	return cfg
}

func runBuild(t *testing.T, cfg *models.BuildConfig) *models.BuildResult {
	t.Helper()

	uc := NewUseCase(UseCaseConfig{})
	require.NoError(t, uc.Setup())

	taskID, err := uc.CreateTask(context.Background(), usecase.TaskConfig{BuildConfig: cfg})
	require.NoError(t, err)

	result, err := uc.WaitResult(taskID)
	require.NoError(t, err)
	require.NotNil(t, result)

	return result
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	trimmed := strings.TrimRight(string(content), "\n")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "\n")
}

func TestBuildPartitioning(t *testing.T) {
	type testCase struct {
		name      string
		totalRows uint64
		fileCount int
		wantRows  []int
		wantFiles []string
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		dir := t.TempDir()

		cfg := buildConfig(t, &models.BuildConfig{
			TotalRows:  tc.totalRows,
			FileCount:  tc.fileCount,
			RandomSeed: 42,
			Output: &models.OutputConfig{
				Type: "csv",
				Path: filepath.Join(dir, "measurements"),
			},
		})

		result := runBuild(t, cfg)
		require.NoError(t, result.Err())
		require.Equal(t, tc.totalRows, result.RowsWritten())
		require.Equal(t, tc.fileCount, result.FilesWritten())

		for i, fileName := range tc.wantFiles {
			lines := readLines(t, filepath.Join(dir, fileName))
			require.Len(t, lines, tc.wantRows[i])
		}
	}

	testCases := []testCase{
		{
			name:      "remainder first split",
			totalRows: 10,
			fileCount: 3,
			wantRows:  []int{4, 3, 3},
			wantFiles: []string{"measurements-0.csv", "measurements-1.csv", "measurements-2.csv"},
		},
		{
			name:      "single file uses plain name",
			totalRows: 5,
			fileCount: 1,
			wantRows:  []int{5},
			wantFiles: []string{"measurements.csv"},
		},
		{
			name:      "zero row partitions still create files",
			totalRows: 2,
			fileCount: 4,
			wantRows:  []int{1, 1, 0, 0},
			wantFiles: []string{"measurements-0.csv", "measurements-1.csv", "measurements-2.csv", "measurements-3.csv"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc(t, tc)
		})
	}
}

func TestBuildDeterminism(t *testing.T) {
	build := func(dir string, workers int) {
		cfg := buildConfig(t, &models.BuildConfig{
			TotalRows:    1000,
			FileCount:    4,
			RandomSeed:   1234,
			WorkersCount: workers,
			Output: &models.OutputConfig{
				Type: "csv",
				Path: filepath.Join(dir, "measurements"),
			},
		})

		result := runBuild(t, cfg)
		require.NoError(t, result.Err())
	}

	firstDir := t.TempDir()
	secondDir := t.TempDir()

	build(firstDir, 1)
	build(secondDir, 4)

	for _, name := range []string{"measurements-0.csv", "measurements-1.csv", "measurements-2.csv", "measurements-3.csv"} {
		first, err := os.ReadFile(filepath.Join(firstDir, name))
		require.NoError(t, err)

		second, err := os.ReadFile(filepath.Join(secondDir, name))
		require.NoError(t, err)

		require.Equal(t, first, second, "partition file %s differs between runs", name)
	}
}

func TestBuildPartialFailure(t *testing.T) {
	dir := t.TempDir()

	// A directory squatting on one partition path fails only that partition.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "measurements-1.csv"), os.ModePerm))

	cfg := buildConfig(t, &models.BuildConfig{
		TotalRows:  9,
		FileCount:  3,
		RandomSeed: 7,
		Output: &models.OutputConfig{
			Type: "csv",
			Path: filepath.Join(dir, "measurements"),
		},
	})

	result := runBuild(t, cfg)

	require.Error(t, result.Err())
	require.Equal(t, 2, result.FilesWritten())
	require.Len(t, result.Failed(), 1)

	failed := result.Failed()[0]
	require.Equal(t, 1, failed.Index)

	var ioErr *common.IOFailureError
	require.ErrorAs(t, failed.Err, &ioErr)
	require.Equal(t, 1, ioErr.Partition)

	require.Len(t, readLines(t, filepath.Join(dir, "measurements-0.csv")), 3)
	require.Len(t, readLines(t, filepath.Join(dir, "measurements-2.csv")), 3)
}

func TestBuildDevNull(t *testing.T) {
	var handled []models.Row

	cfg := buildConfig(t, &models.BuildConfig{
		TotalRows:    100,
		FileCount:    2,
		RandomSeed:   42,
		WorkersCount: 1,
		Output: &models.OutputConfig{
			Type: "devnull",
		},
	})
	cfg.Output.DevNullParams.Handler = func(row models.Row) error {
		handled = append(handled, row)

		return nil
	}

	result := runBuild(t, cfg)
	require.NoError(t, result.Err())
	require.Equal(t, uint64(100), result.RowsWritten())
	require.Len(t, handled, 100)
}

func TestBuildCanceledBeforeStart(t *testing.T) {
	dir := t.TempDir()

	cfg := buildConfig(t, &models.BuildConfig{
		TotalRows:  100,
		FileCount:  2,
		RandomSeed: 42,
		Output: &models.OutputConfig{
			Type: "csv",
			Path: filepath.Join(dir, "measurements"),
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewUseCase(UseCaseConfig{})

	taskID, err := uc.CreateTask(ctx, usecase.TaskConfig{BuildConfig: cfg})
	require.NoError(t, err)

	result, err := uc.WaitResult(taskID)
	require.NoError(t, err)
	require.True(t, result.Interrupted)
	require.Error(t, result.Err())

	// No partition files appear for a run canceled before dispatch.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestBuildProgress(t *testing.T) {
	cfg := buildConfig(t, &models.BuildConfig{
		TotalRows:  500,
		FileCount:  2,
		RandomSeed: 42,
		BatchSize:  50,
		Output:     &models.OutputConfig{Type: "devnull"},
	})

	uc := NewUseCase(UseCaseConfig{})

	taskID, err := uc.CreateTask(context.Background(), usecase.TaskConfig{BuildConfig: cfg})
	require.NoError(t, err)

	_, err = uc.WaitResult(taskID)
	require.NoError(t, err)

	progress, err := uc.GetProgress(taskID)
	require.NoError(t, err)
	require.Equal(t, usecase.Progress{Done: 500, Total: 500}, progress)

	finished, result, err := uc.GetResult(taskID)
	require.NoError(t, err)
	require.True(t, finished)
	require.NoError(t, result.Err())
}

func TestUnknownTask(t *testing.T) {
	uc := NewUseCase(UseCaseConfig{})

	_, err := uc.GetProgress("missing")
	require.Error(t, err)

	_, _, err = uc.GetResult("missing")
	require.Error(t, err)

	_, err = uc.WaitResult("missing")
	require.Error(t, err)
}
