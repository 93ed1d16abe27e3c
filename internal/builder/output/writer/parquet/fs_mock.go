package parquet

import (
	"io"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func newFileSystemMock() *fsMock {
	return &fsMock{
		m: afero.NewMemMapFs(),
	}
}

type fsMock struct {
	m afero.Fs
}

func (f *fsMock) NewFileWriter(fileName string) (io.WriteCloser, error) {
	fw, err := f.m.Create(fileName)
	if err != nil {
		return nil, errors.Errorf("failed to create file in memory fs mock: %v", err)
	}

	return fw, nil
}

func (f *fsMock) NewLocalFileReader(fileName string) (parquet.ReaderAtSeeker, error) {
	fr, err := f.m.Open(fileName)
	if err != nil {
		return nil, errors.Errorf("failed to open file in memory fs mock: %v", err)
	}

	return fr, nil
}

func (f *fsMock) MkdirAll(dir string) error {
	return f.m.MkdirAll(dir, os.ModePerm) //nolint:wrapcheck
}

func (f *fsMock) Stat(name string) (os.FileInfo, error) {
	return f.m.Stat(name) //nolint:wrapcheck
}
