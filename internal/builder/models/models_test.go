package models

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/common"
)

func TestBuildConfigDefaults(t *testing.T) {
	cfg := &BuildConfig{}

	require.NoError(t, cfg.PostProcess())

	require.Equal(t, uint64(DefaultRowsPerFile), cfg.TotalRows)
	require.Equal(t, 1, cfg.FileCount)
	require.Equal(t, DefaultSpread, cfg.Spread)
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.WorkersCount)
	require.Equal(t, uint64(DefaultBatchSize), cfg.BatchSize)
	require.NotZero(t, cfg.RandomSeed)
	require.False(t, cfg.SeededRun)

	require.Equal(t, DefaultOutputType, cfg.Output.Type)
	require.Equal(t, DefaultOutputPath, cfg.Output.Path)
	require.Equal(t, DefaultDelimiter, cfg.Output.CSVParams.Delimiter)
}

func TestBuildConfigSeededRun(t *testing.T) {
	cfg := &BuildConfig{RandomSeed: 42}

	require.NoError(t, cfg.PostProcess())

	require.True(t, cfg.SeededRun)
	require.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestBuildConfigExplicitZeroSeed(t *testing.T) {
	cfg := &BuildConfig{SeededRun: true}

	require.NoError(t, cfg.PostProcess())

	require.True(t, cfg.SeededRun)
	require.Zero(t, cfg.RandomSeed)
}

func TestBuildConfigEnvOverlay(t *testing.T) {
	t.Setenv("ONETRC_ROWS", "123")
	t.Setenv("ONETRC_SEED", "7")
	t.Setenv("ONETRC_FORMAT", "devnull")

	cfg := &BuildConfig{}

	require.NoError(t, cfg.PostProcess())

	require.Equal(t, uint64(123), cfg.TotalRows)
	require.Equal(t, uint64(7), cfg.RandomSeed)
	require.True(t, cfg.SeededRun)
	require.Equal(t, "devnull", cfg.Output.Type)
}

func TestBuildConfigStdoutOutput(t *testing.T) {
	cfg := &BuildConfig{TotalRows: 10, Output: &OutputConfig{Type: "stdout"}}

	require.NoError(t, cfg.PostProcess())

	require.Equal(t, 1, cfg.FileCount)
	require.Equal(t, DefaultDelimiter, cfg.Output.CSVParams.Delimiter)
}

func TestBuildConfigRowsPerFile(t *testing.T) {
	cfg := &BuildConfig{RowsPerFile: 5, FileCount: 4}

	require.NoError(t, cfg.PostProcess())

	require.Equal(t, uint64(20), cfg.TotalRows)
}

func TestBuildConfigInvalid(t *testing.T) {
	type testCase struct {
		name          string
		config        *BuildConfig
		expectedError string
	}

	testCases := []testCase{
		{
			name:          "Mutually exclusive row counts",
			config:        &BuildConfig{TotalRows: 1, RowsPerFile: 1},
			expectedError: "mutually exclusive",
		},
		{
			name:          "Negative file count",
			config:        &BuildConfig{FileCount: -1},
			expectedError: "file count",
		},
		{
			name:          "Negative station count",
			config:        &BuildConfig{StationCount: -5},
			expectedError: "station count",
		},
		{
			name:          "Negative spread",
			config:        &BuildConfig{Spread: -3},
			expectedError: "spread",
		},
		{
			name:          "Unknown output type",
			config:        &BuildConfig{Output: &OutputConfig{Type: "xml"}},
			expectedError: "unknown output type",
		},
		{
			name: "Multi character delimiter",
			config: &BuildConfig{
				Output: &OutputConfig{
					Type:   "csv",
					Params: map[string]any{"delimiter": "||"},
				},
			},
			expectedError: "delimiter",
		},
		{
			name: "Unknown compression codec",
			config: &BuildConfig{
				Output: &OutputConfig{
					Type:   "parquet",
					Params: map[string]any{"compression_codec": "LZO"},
				},
			},
			expectedError: "compression codec",
		},
		{
			name: "HTTP output without endpoint",
			config: &BuildConfig{
				Output: &OutputConfig{Type: "http"},
			},
			expectedError: "endpoint is required",
		},
		{
			name: "Stdout output with multiple files",
			config: &BuildConfig{
				FileCount: 3,
				Output:    &OutputConfig{Type: "stdout"},
			},
			expectedError: "single stream",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		err := tc.config.PostProcess()
		require.Error(t, err)

		var reqErr *common.InvalidRequestError

		require.ErrorAs(t, err, &reqErr)
		require.ErrorContains(t, err, tc.expectedError)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestBuildConfigParseFromJSON(t *testing.T) {
	data := []byte(`{
		"total_rows": 1000,
		"station_count": 10,
		"random_seed": 7,
		"output": {
			"type": "parquet",
			"path": "out/measurements.parquet",
			"params": {"compression_codec": "ZSTD"}
		}
	}`)

	cfg := &BuildConfig{}

	require.NoError(t, cfg.ParseFromJSON(data))

	require.Equal(t, uint64(1000), cfg.TotalRows)
	require.Equal(t, 10, cfg.StationCount)
	require.True(t, cfg.SeededRun)
	require.Equal(t, "ZSTD", cfg.Output.ParquetParams.CompressionCodec)
	require.NotZero(t, cfg.Output.ParquetParams.RowGroupSize)
}

func TestBuildConfigParseFromJSONUnknownField(t *testing.T) {
	cfg := &BuildConfig{}

	err := cfg.ParseFromJSON([]byte(`{"row_count": 1000}`))
	require.Error(t, err)
}

func TestBuildConfigParseFromFile(t *testing.T) {
	content := []byte(`
total_rows: 100
file_count: 2
random_seed: 13
output:
  type: csv
  path: data/measurements
  params:
    delimiter: ","
`)

	path := filepath.Join(t.TempDir(), "request.yml")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg := &BuildConfig{}

	require.NoError(t, cfg.ParseFromFile(path))

	require.Equal(t, uint64(100), cfg.TotalRows)
	require.Equal(t, 2, cfg.FileCount)
	require.Equal(t, ",", cfg.Output.CSVParams.Delimiter)
}

func TestBuildConfigParseFromFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.txt")
	require.NoError(t, os.WriteFile(path, []byte("total_rows: 1"), 0o644))

	cfg := &BuildConfig{}

	require.ErrorContains(t, cfg.ParseFromFile(path), "unknown file format")
}

func TestAppConfigDefaults(t *testing.T) {
	cfg := &AppConfig{}

	require.NoError(t, cfg.PostProcess())

	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, ":8080", cfg.HTTPConfig.ListenAddress)
	require.NotZero(t, cfg.HTTPConfig.ReadTimeout)
	require.NotZero(t, cfg.HTTPConfig.WriteTimeout)
	require.NotZero(t, cfg.HTTPConfig.IdleTimeout)
}

func TestAppConfigInvalidLogFormat(t *testing.T) {
	cfg := &AppConfig{LogFormat: "xml"}

	require.ErrorContains(t, cfg.PostProcess(), "unknown log format")
}

func TestAppConfigEnvOverlay(t *testing.T) {
	t.Setenv("ONETRC_LOG_FORMAT", "json")
	t.Setenv("ONETRC_LISTEN_ADDRESS", ":9090")

	cfg := &AppConfig{}

	// No config file given, env must still apply.
	require.NoError(t, cfg.ParseFromFile(""))

	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, ":9090", cfg.HTTPConfig.ListenAddress)
}
