package models

import (
	"bytes"
	"runtime"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
)

const (
	DefaultRowsPerFile = 10_000_000
	DefaultSpread      = 10.0
	DefaultBatchSize   = 10_000
)

// BuildConfig type is used to describe one dataset build request.
// It is created once at invocation start and never mutated afterwards.
type BuildConfig struct {
	TotalRows    uint64  `env:"ONETRC_ROWS"          json:"total_rows"     yaml:"total_rows"`
	RowsPerFile  uint64  `env:"ONETRC_ROWS_PER_FILE" json:"rows_per_file"  yaml:"rows_per_file"`
	FileCount    int     `env:"ONETRC_FILES"         json:"file_count"     yaml:"file_count"`
	StationCount int     `env:"ONETRC_STATIONS"      json:"station_count"  yaml:"station_count"`
	Spread       float64 `env:"ONETRC_SPREAD"        json:"spread"         yaml:"spread"`
	RandomSeed   uint64  `env:"ONETRC_SEED"          json:"random_seed"    yaml:"random_seed"`
	WorkersCount int     `json:"workers_count"       yaml:"workers_count"`
	BatchSize    uint64  `json:"batch_size"          yaml:"batch_size"`
	// SeededRun reports whether the seed was given explicitly. Callers
	// that can tell an explicit zero seed from an absent one (flag
	// parsing) may set it up front; unseeded runs get a wall-clock seed
	// and are not expected to be reproducible.
	SeededRun bool          `json:"-"      yaml:"-"`
	Output    *OutputConfig `json:"output" yaml:"output"`
}

func (bc *BuildConfig) ParseFromFile(path string) error {
	err := DecodeFile(path, bc)
	if err != nil {
		return errors.WithMessagef(err, "failed to parse build request file %q", path)
	}

	return bc.PostProcess()
}

func (bc *BuildConfig) ParseFromJSON(data []byte) error {
	err := DecodeReader("json", bytes.NewReader(data), bc)
	if err != nil {
		return errors.WithMessage(err, "failed to parse JSON build request")
	}

	return bc.PostProcess()
}

func (bc *BuildConfig) PostProcess() error {
	if bc.Output == nil {
		bc.Output = &OutputConfig{}
	}

	// Env vars overlay the request regardless of where it came from,
	// flags and request files alike.
	if err := cleanenv.ReadEnv(bc); err != nil {
		return common.NewInvalidRequestError("%s", err.Error())
	}

	err := bc.Parse()
	if err != nil {
		return common.NewInvalidRequestError("%s", err.Error())
	}

	bc.FillDefaults()

	errs := bc.Validate()
	if len(errs) != 0 {
		return common.NewInvalidRequestError("%s", parseErrsToString(errs))
	}

	return nil
}

func (bc *BuildConfig) Parse() error {
	if bc.TotalRows != 0 && bc.RowsPerFile != 0 {
		return errors.New("total_rows and rows_per_file are mutually exclusive")
	}

	if bc.Output == nil {
		bc.Output = &OutputConfig{}
	}

	if err := bc.Output.Parse(); err != nil {
		return err
	}

	return nil
}

func (bc *BuildConfig) FillDefaults() {
	if bc.FileCount == 0 {
		bc.FileCount = 1
	}

	if bc.TotalRows == 0 {
		if bc.RowsPerFile == 0 {
			bc.RowsPerFile = DefaultRowsPerFile
		}

		if bc.FileCount > 0 {
			bc.TotalRows = bc.RowsPerFile * uint64(bc.FileCount)
		}
	}

	if bc.Spread == 0 {
		bc.Spread = DefaultSpread
	}

	if bc.RandomSeed != 0 {
		bc.SeededRun = true
	} else if !bc.SeededRun {
		bc.RandomSeed = uint64(time.Now().UnixNano())
	}

	if bc.WorkersCount == 0 {
		bc.WorkersCount = runtime.GOMAXPROCS(0)
	}

	if bc.BatchSize == 0 {
		bc.BatchSize = DefaultBatchSize
	}

	bc.Output.FillDefaults()
}

func (bc *BuildConfig) Validate() []error {
	var errs []error

	if bc.FileCount < 1 {
		errs = append(errs, errors.Errorf("file count should be greater than 0, got %v", bc.FileCount))
	}

	if bc.StationCount < 0 {
		errs = append(errs, errors.Errorf("station count should not be negative, got %v", bc.StationCount))
	}

	if bc.Spread <= 0 {
		errs = append(errs, errors.Errorf("spread should be greater than 0, got %v", bc.Spread))
	}

	if bc.WorkersCount <= 0 {
		errs = append(errs, errors.Errorf("workers count should be greater than 0, got %v", bc.WorkersCount))
	}

	if bc.BatchSize == 0 {
		errs = append(errs, errors.New("batch size should be greater than 0"))
	}

	// Concurrent partitions would interleave on a shared stream.
	if bc.Output != nil && bc.Output.Type == "stdout" && bc.FileCount > 1 {
		errs = append(errs, errors.Errorf("stdout output writes a single stream, got %v files", bc.FileCount))
	}

	if outputErrs := bc.Output.Validate(); len(outputErrs) != 0 {
		errs = append(errs, errors.New("output config:"))
		errs = append(errs, outputErrs...)
	}

	return errs
}
