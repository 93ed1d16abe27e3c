package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output/writer"
	"github.com/glentner/1trc/internal/builder/output/writer/csv"
	"github.com/glentner/1trc/internal/builder/output/writer/devnull"
	httpwriter "github.com/glentner/1trc/internal/builder/output/writer/http"
	"github.com/glentner/1trc/internal/builder/output/writer/parquet"
)

// NewWriter function creates a writer for one partition according to the
// output config. filePath is ignored by destinations that do not write files.
func NewWriter(ctx context.Context, config *models.OutputConfig, partition int, filePath string) (writer.Writer, error) {
	switch config.Type {
	case "csv":
		return csv.NewWriter(ctx, config.CSVParams, partition, filePath), nil
	case "stdout":
		return csv.NewStreamWriter(ctx, config.CSVParams, partition, os.Stdout), nil
	case "parquet":
		return parquet.NewWriter(config.ParquetParams, parquet.NewFileSystem(), partition, filePath), nil
	case "http":
		return httpwriter.NewWriter(ctx, config.HTTPParams, partition), nil
	case "devnull":
		return devnull.NewWriter(config.DevNullParams), nil
	default:
		return nil, errors.Errorf("unknown output type: %s", config.Type)
	}
}

// FileExtensions maps file writing output types to the extension their
// partition files get.
var FileExtensions = map[string]string{
	"csv":     ".csv",
	"parquet": ".parquet",
}

// PartitionPath returns the file path one partition writes to, or an empty
// string for destinations that do not write files. A single file build
// writes to the configured path as given, with the format extension appended
// only when the path has none. Multi file builds get zero padded numeric
// suffixes so names sort in partition order.
func PartitionPath(config *models.OutputConfig, fileCount int, index int) string {
	ext, isFile := FileExtensions[config.Type]
	if !isFile {
		return ""
	}

	if fileCount == 1 {
		if filepath.Ext(config.Path) != "" {
			return config.Path
		}

		return config.Path + ext
	}

	stem := strings.TrimSuffix(config.Path, ext)
	width := len(fmt.Sprintf("%d", fileCount-1))

	return fmt.Sprintf("%s-%0*d%s", stem, width, index, ext)
}
