package export

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/cockroachdb/errors"

	"wagoextract/core"
)

// WriteCSV renders records as RFC 4180 CSV: the fixed header row first,
// then one row per record in ascending item-ID order. Quoting and quote
// doubling follow encoding/csv.
func WriteCSV(w io.Writer, records []core.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(core.Header()); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, rec := range sortedByID(records) {
		if err := cw.Write(rec.Fields()); err != nil {
			return errors.Wrapf(err, "write csv row %d", rec.ID)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// sortedByID copies records into ascending item-ID order. Filter order is
// already deterministic; the ID sort matches the published file layout.
func sortedByID(records []core.Record) []core.Record {
	out := make([]core.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
