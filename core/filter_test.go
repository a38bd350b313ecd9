package core

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"wagoextract/schema"
)

func compositeRow(columns Row, matchedTables ...string) CompositeRow {
	matched := map[string]bool{}
	for _, name := range matchedTables {
		matched[name] = true
	}
	return CompositeRow{Columns: columns, matched: matched}
}

func collect(it *FilterIterator) []CompositeRow {
	var out []CompositeRow
	for it.Next() {
		out = append(out, it.Row())
	}
	return out
}

func TestPredicateVacuouslyTrue(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "everything"})
	require.NoError(t, err)

	rows := []CompositeRow{
		compositeRow(Row{"ClassID": int64(0)}),
		compositeRow(Row{"ClassID": Absent}),
	}
	require.Len(t, collect(Filter(rows, pred)), 2)

	// A nil predicate passes everything too.
	require.Len(t, collect(Filter(rows, nil)), 2)
}

func TestPredicateClassAndSubclass(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{
		Name:       "potion",
		Classes:    []int64{0},
		Subclasses: []int64{1},
	})
	require.NoError(t, err)

	require.True(t, pred.Match(compositeRow(Row{"ClassID": int64(0), "SubclassID": int64(1)})))
	require.False(t, pred.Match(compositeRow(Row{"ClassID": int64(0), "SubclassID": int64(5)})))
	require.False(t, pred.Match(compositeRow(Row{"ClassID": int64(4), "SubclassID": int64(1)})))
	// Missing and absent class codes fail an active criterion.
	require.False(t, pred.Match(compositeRow(Row{"SubclassID": int64(1)})))
	require.False(t, pred.Match(compositeRow(Row{"ClassID": Absent, "SubclassID": int64(1)})))
}

func TestPredicateSpellCategoryNames(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "food", SpellCategories: []string{"Food"}})
	require.NoError(t, err)

	foodID := schema.SpellCategoryIDs["Food"]
	require.True(t, pred.Match(compositeRow(Row{"SpellCategoryID": foodID})))
	require.False(t, pred.Match(compositeRow(Row{"SpellCategoryID": schema.SpellCategoryIDs["Drink"]})))

	// An absent category fails only because the criterion is active.
	require.False(t, pred.Match(compositeRow(Row{"SpellCategoryID": Absent})))

	inactive, err := NewPredicate(schema.Preset{Name: "anything"})
	require.NoError(t, err)
	require.True(t, inactive.Match(compositeRow(Row{"SpellCategoryID": Absent})))
}

func TestPredicateUnknownCategoryName(t *testing.T) {
	_, err := NewPredicate(schema.Preset{Name: "bad", SpellCategories: []string{"Snacks"}})
	require.True(t, errors.Is(err, ErrConfiguration))
}

func TestPredicateExplicitCategoryIDs(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "custom"})
	require.NoError(t, err)
	pred.WithCategoryIDs(5)

	require.True(t, pred.Match(compositeRow(Row{"SpellCategoryID": int64(5)})))
	require.False(t, pred.Match(compositeRow(Row{"SpellCategoryID": int64(6)})))
}

func TestFilterIdempotent(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "consumable", Classes: []int64{0}})
	require.NoError(t, err)

	rows := []CompositeRow{
		compositeRow(Row{"ClassID": int64(0), "ID": int64(1)}),
		compositeRow(Row{"ClassID": int64(2), "ID": int64(2)}),
		compositeRow(Row{"ClassID": int64(0), "ID": int64(3)}),
	}

	once := collect(Filter(rows, pred))
	twice := collect(Filter(once, pred))
	require.Equal(t, once, twice)
}

func TestFilterPreservesOrderAndFanOutBranches(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "custom"})
	require.NoError(t, err)
	pred.WithCategoryIDs(5)

	// One source item fanned out into two branches; only the branch with
	// the requested category passes, and nothing deduplicates the rest.
	rows := []CompositeRow{
		compositeRow(Row{"ID": int64(1), "SpellCategoryID": int64(5)}),
		compositeRow(Row{"ID": int64(1), "SpellCategoryID": Absent}),
		compositeRow(Row{"ID": int64(2), "SpellCategoryID": int64(5)}),
	}

	passed := collect(Filter(rows, pred))
	require.Len(t, passed, 2)
	first, _ := passed[0].Int("ID")
	second, _ := passed[1].Int("ID")
	require.Equal(t, int64(1), first)
	require.Equal(t, int64(2), second)
}

func TestFilterDoesNotMutateRows(t *testing.T) {
	pred, err := NewPredicate(schema.Preset{Name: "consumable", Classes: []int64{0}})
	require.NoError(t, err)

	row := compositeRow(Row{"ClassID": int64(0), "Name": "Potion"})
	collect(Filter([]CompositeRow{row}, pred))

	require.Equal(t, Row{"ClassID": int64(0), "Name": "Potion"}, row.Columns)
}
