package parquet

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output/writer"
)

var codecsByName = map[string]compress.Compression{
	"UNCOMPRESSED": compress.Codecs.Uncompressed,
	"SNAPPY":       compress.Codecs.Snappy,
	"GZIP":         compress.Codecs.Gzip,
	"LZ4":          compress.Codecs.Lz4,
	"LZ4RAW":       compress.Codecs.Lz4Raw,
	"ZSTD":         compress.Codecs.Zstd,
	"BROTLI":       compress.Codecs.Brotli,
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to a parquet file.
// One instance owns one partition file.
type Writer struct {
	config    *models.ParquetConfig
	partition int
	filePath  string

	fs               FileSystem
	schema           *arrow.Schema
	parquetWriter    *pqarrow.FileWriter
	writerProperties *parquet.WriterProperties
	recordBuilder    *array.RecordBuilder

	bufferedRows uint64
	writtenRows  uint64

	writerMutex *sync.Mutex
	started     bool
}

// FileSystem abstracts file creation so tests can write to memory.
type FileSystem interface {
	NewFileWriter(fileName string) (io.WriteCloser, error)
	NewLocalFileReader(fileName string) (parquet.ReaderAtSeeker, error)
	MkdirAll(dir string) error
	Stat(name string) (os.FileInfo, error)
}

// NewWriter function creates Writer object.
func NewWriter(config *models.ParquetConfig, fs FileSystem, partition int, filePath string) *Writer {
	return &Writer{
		config:      config,
		partition:   partition,
		filePath:    filePath,
		fs:          fs,
		writerMutex: &sync.Mutex{},
		started:     false,
	}
}

// measurementsSchema returns the two-column measurement schema. Station names
// repeat heavily, so the station column is dictionary encoded.
func (w *Writer) measurementsSchema() (*arrow.Schema, *parquet.WriterProperties) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "station", Type: arrow.BinaryTypes.String},
		{Name: "temperature", Type: arrow.PrimitiveTypes.Float64},
	}, nil)

	properties := parquet.NewWriterProperties(
		parquet.WithCompression(codecsByName[w.config.CompressionCodec]),
		parquet.WithDictionaryDefault(false),
		parquet.WithDictionaryFor("station", true),
	)

	return schema, properties
}

// Init function creates the partition file and the parquet writer for it.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for partition file %q has already been initialized", w.filePath)
	}

	w.schema, w.writerProperties = w.measurementsSchema()
	w.recordBuilder = array.NewRecordBuilder(memory.DefaultAllocator, w.schema)
	w.recordBuilder.Reserve(int(w.config.RowGroupSize))

	if dir := filepath.Dir(w.filePath); dir != "." {
		if err := w.fs.MkdirAll(dir); err != nil {
			return common.NewIOFailureError(w.partition, errors.New(err.Error()))
		}
	}

	fileWriter, err := w.fs.NewFileWriter(w.filePath)
	if err != nil {
		return common.NewIOFailureError(w.partition, err)
	}

	parquetWriter, err := pqarrow.NewFileWriter(w.schema, fileWriter, w.writerProperties, pqarrow.DefaultWriterProps())
	if err != nil {
		return common.NewIOFailureError(w.partition, errors.New(err.Error()))
	}

	w.parquetWriter = parquetWriter
	w.started = true

	return nil
}

// WriteRow function buffers row and writes out a row group when the buffer
// reaches the configured size.
func (w *Writer) WriteRow(row models.Row) error {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	//nolint:forcetypeassert
	w.recordBuilder.Fields()[0].(*array.StringBuilder).Append(row.Station)
	//nolint:forcetypeassert
	w.recordBuilder.Fields()[1].(*array.Float64Builder).Append(row.Temperature)

	w.bufferedRows++

	if w.bufferedRows >= w.config.RowGroupSize {
		if err := w.flush(); err != nil {
			return common.NewIOFailureError(w.partition, err)
		}
	}

	return nil
}

func (w *Writer) flush() error {
	if w.bufferedRows == 0 {
		return nil
	}

	// NewRecord resets the builder so it can accumulate the next group.
	record := w.recordBuilder.NewRecord()
	defer record.Release()

	if err := w.parquetWriter.WriteBuffered(record); err != nil {
		return errors.New(err.Error())
	}

	w.writtenRows += w.bufferedRows
	w.bufferedRows = 0

	return nil
}

// Rows function returns the number of rows written out so far.
func (w *Writer) Rows() uint64 {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	return w.writtenRows
}

// Teardown function writes the remaining buffer and the parquet footer.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	if err := w.flush(); err != nil {
		return common.NewIOFailureError(w.partition, err)
	}

	if err := w.parquetWriter.Close(); err != nil {
		return common.NewIOFailureError(w.partition, errors.New(err.Error()))
	}

	return nil
}
