package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output/writer"
)

const (
	maxBodySize  = 1 << 20 // 1 Mb
	retryWaitMin = 1 * time.Second
	retryWaitMax = 10 * time.Minute
)

type batchPayload struct {
	Partition int          `json:"partition"`
	Rows      []rowPayload `json:"rows"`
}

type rowPayload struct {
	Station     string  `json:"station"`
	Temperature float64 `json:"temperature"`
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer delivering rows to an HTTP
// endpoint in JSON batches.
type Writer struct {
	ctx context.Context //nolint:containedctx

	config    *models.HTTPParams
	partition int

	retryableClient *retryablehttp.Client
	lastErr         error

	buffer      []models.Row
	writtenRows uint64
	started     bool
}

// NewWriter function creates Writer object.
func NewWriter(ctx context.Context, config *models.HTTPParams, partition int) *Writer {
	w := &Writer{
		ctx:       ctx,
		config:    config,
		partition: partition,
		buffer:    make([]models.Row, 0, config.BatchSize),
	}

	w.initRetryableClient()

	return w
}

func (w *Writer) initRetryableClient() {
	retryableClient := retryablehttp.NewClient()
	retryableClient.Logger = nil
	retryableClient.RetryWaitMin = retryWaitMin
	retryableClient.RetryWaitMax = retryWaitMax
	retryableClient.RetryMax = w.calculateRetryMax(
		w.config.Timeout,
		retryableClient.RetryWaitMin,
		retryableClient.RetryWaitMax,
	)
	retryableClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			w.lastErr = err
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	w.retryableClient = retryableClient
}

func (w *Writer) calculateRetryMax(timeout, waitMin, waitMax time.Duration) int {
	if timeout <= 0 || waitMin <= 0 {
		return 0
	}

	retries := 1
	remaining := timeout
	wait := waitMin

	for {
		if wait > waitMax {
			wait = waitMax
		}

		if remaining < wait {
			break
		}

		remaining -= wait
		retries++

		wait *= 2
	}

	return retries
}

// Init function verifies the writer is used once.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for partition %d has already been initialized", w.partition)
	}

	w.started = true

	return nil
}

// WriteRow function buffers row and sends a batch when the buffer is full.
func (w *Writer) WriteRow(row models.Row) error {
	if common.CtxClosed(w.ctx) {
		return &common.ContextCancelError{}
	}

	w.buffer = append(w.buffer, row)

	if uint64(len(w.buffer)) >= w.config.BatchSize {
		return w.sendBuffer()
	}

	return nil
}

func (w *Writer) sendBuffer() error {
	if len(w.buffer) == 0 {
		return nil
	}

	req, err := w.buildRequest(w.buffer)
	if err != nil {
		return common.NewIOFailureError(w.partition, errors.WithMessage(err, "failed to build request"))
	}

	if err := w.sendRequest(req); err != nil {
		return common.NewIOFailureError(w.partition, errors.WithMessage(err, "failed to send request"))
	}

	w.writtenRows += uint64(len(w.buffer))
	w.buffer = w.buffer[:0]

	return nil
}

func (w *Writer) buildRequest(rows []models.Row) (*retryablehttp.Request, error) {
	payload := batchPayload{
		Partition: w.partition,
		Rows:      make([]rowPayload, 0, len(rows)),
	}

	for _, row := range rows {
		payload.Rows = append(payload.Rows, rowPayload{
			Station:     row.Station,
			Temperature: row.Temperature,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, w.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.New(err.Error())
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (w *Writer) sendRequest(req *retryablehttp.Request) error {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.Timeout)
	defer cancel()

	resp, err := w.retryableClient.Do(req.WithContext(ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && w.lastErr != nil {
			return errors.Errorf("%s, last error: %s", err.Error(), w.lastErr.Error())
		}

		return errors.New(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errors.New(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("received non-OK status code %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}

// Rows function returns the number of rows delivered so far.
func (w *Writer) Rows() uint64 {
	return w.writtenRows
}

// Teardown function sends the remaining buffer and closes idle connections.
func (w *Writer) Teardown() error {
	err := w.sendBuffer()

	w.retryableClient.HTTPClient.CloseIdleConnections()

	return err
}
