package csv

import (
	"context"
	stdCSV "encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output/writer"
)

const (
	flushInterval = time.Second
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to a delimited text file.
// One instance owns one partition file, or a caller supplied stream.
type Writer struct {
	ctx context.Context //nolint:containedctx

	config    *models.CSVConfig
	partition int
	filePath  string
	stream    io.Writer

	fileDescriptor *os.File
	csvWriter      *stdCSV.Writer
	flushTicker    *time.Ticker
	flushWg        *sync.WaitGroup
	flushStopChan  chan struct{}

	writtenRows  uint64
	bufferedRows uint64

	writerMutex *sync.Mutex
	errorsChan  chan error
	started     bool
}

// NewWriter function creates Writer object.
func NewWriter(ctx context.Context, config *models.CSVConfig, partition int, filePath string) *Writer {
	return &Writer{
		ctx:           ctx,
		config:        config,
		partition:     partition,
		filePath:      filePath,
		flushTicker:   time.NewTicker(flushInterval),
		flushWg:       &sync.WaitGroup{},
		flushStopChan: make(chan struct{}),
		writerMutex:   &sync.Mutex{},
		errorsChan:    make(chan error, 1),
		started:       false,
	}
}

// NewStreamWriter function creates Writer object that appends rows to an
// already open stream, such as stdout, instead of a partition file. The
// stream is not closed on Teardown.
func NewStreamWriter(ctx context.Context, config *models.CSVConfig, partition int, stream io.Writer) *Writer {
	w := NewWriter(ctx, config, partition, "")
	w.stream = stream

	return w
}

// Init function creates the partition file and starts periodic flushing.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for partition file %q has already been initialized", w.filePath)
	}

	out := w.stream

	if out == nil {
		if dir := filepath.Dir(w.filePath); dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return common.NewIOFailureError(w.partition, errors.New(err.Error()))
			}
		}

		file, err := os.OpenFile(w.filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.ModePerm)
		if err != nil {
			return common.NewIOFailureError(w.partition, errors.New(err.Error()))
		}

		w.fileDescriptor = file
		out = file
	}

	csvWriter := stdCSV.NewWriter(out)
	csvWriter.Comma = []rune(w.config.Delimiter)[0]

	w.csvWriter = csvWriter

	w.started = true
	w.flushWg.Add(1)

	go w.flusher()

	return nil
}

func (w *Writer) flusher() {
	defer w.flushWg.Done()

	for {
		select {
		case <-w.flushStopChan:
			return
		case <-w.flushTicker.C:
			if err := w.flush(); err != nil {
				select {
				case w.errorsChan <- err:
				default:
				}
			}
		}
	}
}

// WriteRow function serializes row and appends it to the partition file.
func (w *Writer) WriteRow(row models.Row) error {
	select {
	case <-w.ctx.Done():
		return &common.ContextCancelError{}
	case err := <-w.errorsChan:
		return common.NewIOFailureError(w.partition, err)
	default:
	}

	record := []string{
		row.Station,
		strconv.FormatFloat(row.Temperature, 'f', models.FloatPrecision, 64),
	}

	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	if err := w.csvWriter.Write(record); err != nil {
		return common.NewIOFailureError(w.partition, errors.New(err.Error()))
	}

	w.bufferedRows++

	return nil
}

func (w *Writer) flush() error {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	w.csvWriter.Flush()

	if err := w.csvWriter.Error(); err != nil {
		return errors.New(err.Error())
	}

	w.writtenRows += w.bufferedRows
	w.bufferedRows = 0

	return nil
}

// Rows function returns the number of rows flushed to disk so far.
func (w *Writer) Rows() uint64 {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	return w.writtenRows
}

// Teardown function stops flushing, drains the buffer and closes the file.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	w.flushTicker.Stop()
	close(w.flushStopChan)
	w.flushWg.Wait()

	flushErr := w.flush()

	if w.fileDescriptor != nil {
		if err := w.fileDescriptor.Close(); err != nil {
			return common.NewIOFailureError(w.partition, errors.New(err.Error()))
		}
	}

	if flushErr != nil {
		return common.NewIOFailureError(w.partition, flushErr)
	}

	select {
	case err := <-w.errorsChan:
		return common.NewIOFailureError(w.partition, err)
	default:
		return nil
	}
}
