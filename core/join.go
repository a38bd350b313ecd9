package core

import "github.com/cockroachdb/errors"

// JoinPolicy fixes how a stage treats a left row with no match. The policy
// is a property of the stage, never of an individual row.
type JoinPolicy int

const (
	// InnerJoin drops left rows with no match on the stage's key.
	InnerJoin JoinPolicy = iota
	// LeftJoin keeps unmatched left rows, setting every right-side column
	// to Absent.
	LeftJoin
)

// Cardinality declares how many right-side matches a stage expects per key.
type Cardinality int

const (
	// OneToOne expects at most one match per key; more is a data-integrity
	// fault.
	OneToOne Cardinality = iota
	// OneToMany fans out, emitting one composite row per match.
	OneToMany
)

// JoinStage describes one link of a denormalization chain. The left input
// is the output of the previous stage (or the primary table for the first
// stage); Right is indexed once and probed with each left row.
type JoinStage struct {
	Right       TableData
	LeftKey     string
	RightKey    string
	Cardinality Cardinality
	Policy      JoinPolicy
}

// Denormalize runs the join chain over the primary table and returns the
// composite rows in primary-table order. Each composite row traces to
// exactly one primary row; only declared one-to-many stages multiply rows.
func Denormalize(primary TableData, stages []JoinStage) ([]CompositeRow, error) {
	out := make([]CompositeRow, 0, len(primary.Rows))
	for _, row := range primary.Rows {
		composite := CompositeRow{Columns: make(Row, len(row)), matched: map[string]bool{}}
		for k, v := range row {
			composite.Columns[k] = v
		}
		out = append(out, composite)
	}

	// Track the accumulated column set so an unknown join key is reported
	// as configuration, not as a silent never-matching probe.
	columns := make(map[string]bool, len(primary.Columns))
	for _, c := range primary.Columns {
		columns[c] = true
	}

	for _, stage := range stages {
		if !columns[stage.LeftKey] {
			return nil, errors.Mark(
				errors.Newf("join against %s: left input has no key column %q", stage.Right.Name, stage.LeftKey),
				ErrConfiguration)
		}
		joined, err := joinStage(out, stage)
		if err != nil {
			return nil, err
		}
		out = joined
		for _, name := range mergedColumnNames(stage, columns) {
			columns[name] = true
		}
	}
	return out, nil
}

// buildJoinIndex hashes the right table by its join key: key value to row
// positions. Built once per stage, O(n) in right-table size. Rows whose key
// cell is not an integer can never match and are skipped.
func buildJoinIndex(t TableData, key string) (map[int64][]int, error) {
	if !t.HasColumn(key) {
		return nil, errors.Mark(
			errors.Newf("table %s has no join key column %q", t.Name, key),
			ErrConfiguration)
	}
	index := make(map[int64][]int, len(t.Rows))
	for i, row := range t.Rows {
		k, ok := intValue(row[key])
		if !ok {
			continue
		}
		index[k] = append(index[k], i)
	}
	return index, nil
}

func joinStage(left []CompositeRow, stage JoinStage) ([]CompositeRow, error) {
	index, err := buildJoinIndex(stage.Right, stage.RightKey)
	if err != nil {
		return nil, err
	}

	out := make([]CompositeRow, 0, len(left))
	for _, row := range left {
		var matches []int
		// A left key that is Absent (miss in an earlier left stage)
		// probes nothing; the policy decides what happens, same as any
		// other unmatched row.
		if key, ok := intValue(row.Columns[stage.LeftKey]); ok {
			matches = index[key]
		}

		switch {
		case len(matches) == 0:
			if stage.Policy == LeftJoin {
				out = append(out, mergeMiss(row, stage))
			}
		case stage.Cardinality == OneToOne && len(matches) > 1:
			key, _ := intValue(row.Columns[stage.LeftKey])
			return nil, errors.Mark(
				errors.Newf("join against %s on %q: key %d matched %d rows, expected at most one",
					stage.Right.Name, stage.RightKey, key, len(matches)),
				ErrAmbiguousJoin)
		default:
			for _, ri := range matches {
				out = append(out, mergeMatch(row, stage, stage.Right.Rows[ri]))
			}
		}
	}
	return out, nil
}

// mergeMatch copies the accumulated left columns verbatim and adds the
// right row's columns. The right join key is dropped (its value equals the
// left key); any other column whose name is already taken is stored
// qualified as Table.Column.
func mergeMatch(left CompositeRow, stage JoinStage, right Row) CompositeRow {
	out := left.clone()
	for _, name := range stage.Right.Columns {
		if name == stage.RightKey {
			continue
		}
		out.Columns[mergedName(stage.Right.Name, name, left.Columns)] = right[name]
	}
	out.matched[stage.Right.Name] = true
	return out
}

// mergeMiss emits the left row with every right-side column set to Absent.
func mergeMiss(left CompositeRow, stage JoinStage) CompositeRow {
	out := left.clone()
	for _, name := range stage.Right.Columns {
		if name == stage.RightKey {
			continue
		}
		out.Columns[mergedName(stage.Right.Name, name, left.Columns)] = Absent
	}
	out.matched[stage.Right.Name] = false
	return out
}

func mergedName(table, column string, taken Row) string {
	if _, exists := taken[column]; exists {
		return table + "." + column
	}
	return column
}

func mergedColumnNames(stage JoinStage, taken map[string]bool) []string {
	var names []string
	for _, name := range stage.Right.Columns {
		if name == stage.RightKey {
			continue
		}
		if taken[name] {
			names = append(names, stage.Right.Name+"."+name)
		} else {
			names = append(names, name)
		}
	}
	return names
}
