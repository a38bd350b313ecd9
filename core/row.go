package core

// Row is a single decoded table row, mapping column name to a scalar value.
// Int columns decode to int64, string columns to string.
type Row map[string]interface{}

// TableData is a fully materialized raw table. It is created by the loader
// and treated as read-only for the rest of the run.
type TableData struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table declares the named column.
func (t TableData) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent is the tagged marker a left join writes into right-side columns
// when the probe finds no match. It is a distinct type, not a zero or empty
// sentinel, so it can never be confused with legitimate data.
var Absent = absentValue{}

// IsAbsent reports whether v is the left-join miss marker.
func IsAbsent(v interface{}) bool {
	_, ok := v.(absentValue)
	return ok
}

// CompositeRow is the denormalized unit of work: the columns accumulated
// across the join chain plus, per joined-in table, whether the probe found
// a match.
type CompositeRow struct {
	Columns Row

	matched map[string]bool
}

// Matched reports whether the named table contributed a real match to this
// row. It is false both for tables joined with a left-policy miss and for
// tables not in the chain at all.
func (r CompositeRow) Matched(table string) bool {
	return r.matched[table]
}

// Int returns the named column as int64. ok is false when the column is
// missing, absent, or not an integer.
func (r CompositeRow) Int(name string) (int64, bool) {
	return intValue(r.Columns[name])
}

// Text returns the named column as a string, or "" when the column is
// missing or absent.
func (r CompositeRow) Text(name string) string {
	if s, ok := r.Columns[name].(string); ok {
		return s
	}
	return ""
}

func (r CompositeRow) clone() CompositeRow {
	columns := make(Row, len(r.Columns)+4)
	for k, v := range r.Columns {
		columns[k] = v
	}
	matched := make(map[string]bool, len(r.matched)+1)
	for k, v := range r.matched {
		matched[k] = v
	}
	return CompositeRow{Columns: columns, matched: matched}
}

func intValue(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
