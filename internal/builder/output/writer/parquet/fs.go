package parquet

import (
	"io"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/pkg/errors"
)

func NewFileSystem() FileSystem {
	return &fs{}
}

type fs struct{}

func (f *fs) NewFileWriter(fileName string) (io.WriteCloser, error) {
	fw, err := os.Create(fileName)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	return fw, nil
}

func (f *fs) NewLocalFileReader(fileName string) (parquet.ReaderAtSeeker, error) {
	return os.Open(fileName) //nolint:wrapcheck
}

func (f *fs) MkdirAll(dir string) error {
	return os.MkdirAll(dir, os.ModePerm) //nolint:wrapcheck
}

func (f *fs) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name) //nolint:wrapcheck
}
