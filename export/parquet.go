package export

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/parquet-go/parquet-go"

	"wagoextract/core"
)

// WriteParquet renders records as a snappy-compressed parquet file, one row
// per record in ascending item-ID order. The schema derives from Record's
// parquet tags.
func WriteParquet(w io.Writer, records []core.Record) error {
	pw := parquet.NewGenericWriter[core.Record](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(sortedByID(records)); err != nil {
		return errors.Wrap(err, "write parquet rows")
	}
	return errors.Wrap(pw.Close(), "close parquet writer")
}
