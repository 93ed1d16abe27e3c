package utils

import "io"

// DummyReadWriteCloser adapts a plain Reader or Writer to the closer
// interfaces with a no-op Close.
type DummyReadWriteCloser struct {
	io.Reader
	io.Writer
}

// Close implements the [io.Closer] interface.
func (DummyReadWriteCloser) Close() error {
	return nil
}
