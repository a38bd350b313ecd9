package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"

	"wagoextract/core"
	"wagoextract/schema"
)

// decodeTable parses a raw CSV payload against the declared table schema.
// Every declared column must appear in the upstream header; extra upstream
// columns are ignored, since the export carries far more than the pipeline
// reads.
func decodeTable(t schema.Table, payload []byte) (core.TableData, error) {
	r := csv.NewReader(bytes.NewReader(payload))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return core.TableData{}, errors.Mark(
			errors.Wrapf(err, "table %s: read header", t.Name),
			core.ErrSchemaMismatch)
	}
	position := make(map[string]int, len(header))
	for i, name := range header {
		position[name] = i
	}

	indexes := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		idx, ok := position[col.Source]
		if !ok {
			return core.TableData{}, errors.Mark(
				errors.Newf("table %s: upstream export is missing column %q", t.Name, col.Source),
				core.ErrSchemaMismatch)
		}
		indexes[i] = idx
	}

	var rows []core.Row
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return core.TableData{}, errors.Mark(
				errors.Wrapf(err, "table %s: line %d", t.Name, line),
				core.ErrSchemaMismatch)
		}

		row := make(core.Row, len(t.Columns))
		for i, col := range t.Columns {
			raw := ""
			if indexes[i] < len(record) {
				raw = record[indexes[i]]
			}
			switch col.Kind {
			case schema.KindInt:
				v, err := parseInt(raw)
				if err != nil {
					return core.TableData{}, errors.Mark(
						errors.Wrapf(err, "table %s: line %d: column %s", t.Name, line, col.Source),
						core.ErrSchemaMismatch)
				}
				row[col.Name] = v
			case schema.KindString:
				row[col.Name] = raw
			}
		}
		rows = append(rows, row)
	}

	return core.TableData{
		Name:    t.Name,
		Columns: t.ColumnNames(),
		Rows:    rows,
	}, nil
}

// parseInt decodes an integer cell. The upstream export leaves optional
// numeric cells empty, which decodes as zero.
func parseInt(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
