package file

import (
	"compress/gzip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/parquet-go/parquet-go"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/roster"
)

type format int

const (
	formatParquet format = iota
	formatCSV
	formatCSVGzip
)

func detectFormat(path string) (format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return formatParquet, nil
	case strings.HasSuffix(lower, ".csv.gz"):
		return formatCSVGzip, nil
	case strings.HasSuffix(lower, ".csv"):
		return formatCSV, nil
	default:
		return 0, crerr.Newf("unsupported file type %q: expected .parquet, .csv or .csv.gz", filepath.Ext(path))
	}
}

// ReadPlays decodes a play-by-play file. The format follows the file extension.
func ReadPlays(ctx context.Context, path string) ([]play.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := exists(path, play.ErrSeasonNotFound); err != nil {
		return nil, err
	}

	if f == formatParquet {
		rows, err := readParquet[playParquetModel](path, requiredPlayColumns())
		if err != nil {
			return nil, err
		}
		out := make([]play.Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, row.toDomain())
		}
		return out, nil
	}

	var out []play.Record
	err = withCSV(path, f, func(r io.Reader) error {
		var decodeErr error
		out, decodeErr = decodePlaysCSV(r)
		return decodeErr
	})
	return out, err
}

// ReadRoster decodes a weekly roster file.
func ReadRoster(ctx context.Context, path string) ([]roster.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := exists(path, roster.ErrSeasonNotFound); err != nil {
		return nil, err
	}

	if f == formatParquet {
		rows, err := readParquet[rosterParquetModel](path, requiredRosterColumns)
		if err != nil {
			return nil, err
		}
		out := make([]roster.Entry, 0, len(rows))
		for _, row := range rows {
			out = append(out, row.toDomain())
		}
		return out, nil
	}

	var out []roster.Entry
	err = withCSV(path, f, func(r io.Reader) error {
		var decodeErr error
		out, decodeErr = decodeRosterCSV(r)
		return decodeErr
	})
	return out, err
}

func exists(path string, notFound error) error {
	if _, err := os.Stat(path); err != nil {
		if crerr.Is(err, fs.ErrNotExist) {
			return crerr.Wrapf(notFound, "%s", path)
		}
		return crerr.Wrapf(err, "stat %s", path)
	}
	return nil
}

func withCSV(path string, f format, decode func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return crerr.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var src io.Reader = file
	if f == formatCSVGzip {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return crerr.Wrapf(err, "open gzip %s", path)
		}
		defer gz.Close()
		src = gz
	}

	if err := decode(src); err != nil {
		return crerr.Wrapf(err, "read csv %s", path)
	}
	return nil
}

// readParquet checks the file schema for every required column before decoding,
// since optional model fields would otherwise read a missing column as null.
func readParquet[T any](path string, required []string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, crerr.Wrapf(err, "stat %s", path)
	}
	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, crerr.Wrapf(err, "read parquet %s", path)
	}
	schema := pf.Schema()
	for _, name := range required {
		if _, ok := schema.Lookup(name); !ok {
			return nil, crerr.Wrapf(crerr.Newf("missing required column %q", name), "read parquet %s", path)
		}
	}

	rows, err := parquet.Read[T](file, info.Size())
	if err != nil {
		return nil, crerr.Wrapf(err, "read parquet %s", path)
	}
	return rows, nil
}
