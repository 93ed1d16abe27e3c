package models

import (
	"net/url"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
)

const (
	DefaultOutputPath = "measurements"
	DefaultOutputType = "csv"
	DefaultDelimiter  = ";"

	// One fractional digit keeps values parseable as fixed-width by
	// downstream challenge solutions.
	FloatPrecision = 1
)

// Row is a single measurement record. Rows are produced, serialized and
// discarded; they are never retained after being written.
type Row struct {
	Station     string
	Temperature float64
}

// OutputConfig type is used to describe destination of generated measurements.
type OutputConfig struct {
	Type          string         `env:"ONETRC_FORMAT" json:"type"   yaml:"type"`
	Path          string         `env:"ONETRC_OUTPUT" json:"path"   yaml:"path"`
	Params        any            `json:"params"       yaml:"params"`
	CSVParams     *CSVConfig     `json:"-"            yaml:"-"`
	ParquetParams *ParquetConfig `json:"-"            yaml:"-"`
	HTTPParams    *HTTPParams    `json:"-"            yaml:"-"`
	DevNullParams *DevNullConfig `json:"-"            yaml:"-"`
}

// CSVConfig type is used to describe config for delimited text writer.
type CSVConfig struct {
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// ParquetConfig type is used to describe config for parquet writer.
type ParquetConfig struct {
	CompressionCodec string `json:"compression_codec" yaml:"compression_codec"`
	RowGroupSize     uint64 `json:"row_group_size"    yaml:"row_group_size"`
}

// HTTPParams type is used to describe config for HTTP delivery writer.
type HTTPParams struct {
	Endpoint  string        `json:"endpoint"   yaml:"endpoint"`
	BatchSize uint64        `json:"batch_size" yaml:"batch_size"`
	Timeout   time.Duration `json:"timeout"    yaml:"timeout"`
}

// DevNullConfig type is used to describe config for null writer.
type DevNullConfig struct {
	Handler func(row Row) error `json:"-" yaml:"-"`
}

var OutputTypes = []string{"csv", "parquet", "devnull", "http", "stdout"}
var DiskFilesOutputTypes = []string{"csv", "parquet"} // output types that actually create files on disk

func (c *OutputConfig) Parse() error {
	var err error

	switch c.Type {
	// A stdout stream is delimited text too, it shares the csv params.
	case "csv", "stdout", "":
		c.CSVParams, err = common.AnyToStruct[CSVConfig](c.Params)
	case "parquet":
		c.ParquetParams, err = common.AnyToStruct[ParquetConfig](c.Params)
	case "http":
		c.HTTPParams, err = common.AnyToStruct[HTTPParams](c.Params)
	case "devnull":
		c.DevNullParams, err = common.AnyToStruct[DevNullConfig](c.Params)
	}

	if err != nil {
		return errors.WithMessagef(err, "%q output params", c.Type)
	}

	if err = FieldParse(c.CSVParams); err != nil {
		return errors.WithMessage(err, "csv params")
	}

	if err = FieldParse(c.ParquetParams); err != nil {
		return errors.WithMessage(err, "parquet params")
	}

	if err = FieldParse(c.HTTPParams); err != nil {
		return errors.WithMessage(err, "http params")
	}

	if err = FieldParse(c.DevNullParams); err != nil {
		return errors.WithMessage(err, "devnull params")
	}

	return nil
}

func (c *OutputConfig) FillDefaults() {
	if c.Type == "" {
		c.Type = DefaultOutputType
	}

	if c.Path == "" {
		c.Path = DefaultOutputPath
	}

	FieldFillDefaults(c.CSVParams)

	FieldFillDefaults(c.ParquetParams)

	FieldFillDefaults(c.HTTPParams)

	FieldFillDefaults(c.DevNullParams)
}

func (c *OutputConfig) Validate() []error {
	var errs []error

	if !slices.Contains(OutputTypes, c.Type) {
		errs = append(errs, errors.Errorf("unknown output type: %s", c.Type))
	}

	if csvErrs := FieldValidate(c.CSVParams); len(csvErrs) != 0 {
		errs = append(errs, errors.New("csv params:"))
		errs = append(errs, csvErrs...)
	}

	if parquetErrs := FieldValidate(c.ParquetParams); len(parquetErrs) != 0 {
		errs = append(errs, errors.New("parquet params:"))
		errs = append(errs, parquetErrs...)
	}

	if httpErrs := FieldValidate(c.HTTPParams); len(httpErrs) != 0 {
		errs = append(errs, errors.New("http params:"))
		errs = append(errs, httpErrs...)
	}

	if devNullErrs := FieldValidate(c.DevNullParams); len(devNullErrs) != 0 {
		errs = append(errs, errors.New("devnull params:"))
		errs = append(errs, devNullErrs...)
	}

	return errs
}

func (c *CSVConfig) Parse() error {
	return nil
}

func (c *CSVConfig) FillDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
}

func (c *CSVConfig) Validate() []error {
	var errs []error

	if len([]rune(c.Delimiter)) != 1 {
		errs = append(errs, errors.Errorf("delimiter must be a single character, got %q", c.Delimiter))
	}

	return errs
}

var parquetCodecs = []string{"UNCOMPRESSED", "SNAPPY", "GZIP", "LZ4", "LZ4RAW", "ZSTD", "BROTLI"}

func (c *ParquetConfig) Parse() error {
	return nil
}

func (c *ParquetConfig) FillDefaults() {
	const defaultRowGroupSize = 65536

	if c.CompressionCodec == "" {
		c.CompressionCodec = "SNAPPY"
	}

	if c.RowGroupSize == 0 {
		c.RowGroupSize = defaultRowGroupSize
	}
}

func (c *ParquetConfig) Validate() []error {
	var errs []error

	if !slices.Contains(parquetCodecs, c.CompressionCodec) {
		errs = append(errs, errors.Errorf("unknown compression codec: %s", c.CompressionCodec))
	}

	if c.RowGroupSize == 0 {
		errs = append(errs, errors.New("row group size must be greater than 0"))
	}

	return errs
}

func (c *HTTPParams) Parse() error {
	return nil
}

func (c *HTTPParams) FillDefaults() {
	const (
		defaultBatchSize = 1000
		defaultTimeout   = time.Minute
	)

	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}

	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

func (c *HTTPParams) Validate() []error {
	var errs []error

	if c.Endpoint == "" {
		errs = append(errs, errors.New("endpoint is required"))
	} else if _, err := url.ParseRequestURI(c.Endpoint); err != nil {
		errs = append(errs, errors.Errorf("invalid endpoint %q: %v", c.Endpoint, err))
	}

	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout must not be negative, got %v", c.Timeout))
	}

	return errs
}

func (c *DevNullConfig) Parse() error {
	return nil
}

func (c *DevNullConfig) FillDefaults() {}

func (c *DevNullConfig) Validate() []error {
	return nil
}
