package core

import (
	roaring "github.com/RoaringBitmap/roaring/v2"
	"github.com/cockroachdb/errors"

	"wagoextract/schema"
)

// Predicate is the logical AND of independently supplied criteria over
// composite-row fields. A nil bitmap leaves that criterion inactive
// (vacuously true); a nil *Predicate passes every row. Evaluation never
// mutates the row.
type Predicate struct {
	classes    *roaring.Bitmap
	subclasses *roaring.Bitmap
	categories *roaring.Bitmap
}

// NewPredicate compiles a category preset into its predicate. Symbolic
// spell-category names resolve through the fixed schema.SpellCategoryIDs
// lookup; an unknown name is a configuration fault.
func NewPredicate(p schema.Preset) (*Predicate, error) {
	pred := &Predicate{
		classes:    bitmapOf(p.Classes),
		subclasses: bitmapOf(p.Subclasses),
	}
	if len(p.SpellCategories) > 0 {
		pred.categories = roaring.New()
		for _, name := range p.SpellCategories {
			id, ok := schema.SpellCategoryIDs[name]
			if !ok {
				return nil, errors.Mark(
					errors.Newf("preset %s: unknown spell category name %q", p.Name, name),
					ErrConfiguration)
			}
			pred.categories.Add(uint32(id))
		}
	}
	return pred, nil
}

// WithCategoryIDs adds explicit spell-category identifiers to the category
// criterion, activating it if the preset supplied none.
func (p *Predicate) WithCategoryIDs(ids ...int64) *Predicate {
	if p.categories == nil {
		p.categories = roaring.New()
	}
	for _, id := range ids {
		p.categories.Add(uint32(id))
	}
	return p
}

// Match evaluates the predicate against one composite row. A row whose
// SpellCategoryID is absent (no effect, or effect without a category) fails
// only when the category criterion is active.
func (p *Predicate) Match(row CompositeRow) bool {
	if p == nil {
		return true
	}
	if !matchSet(p.classes, row, "ClassID") {
		return false
	}
	if !matchSet(p.subclasses, row, "SubclassID") {
		return false
	}
	return matchSet(p.categories, row, "SpellCategoryID")
}

func matchSet(set *roaring.Bitmap, row CompositeRow, column string) bool {
	if set == nil {
		return true
	}
	v, ok := row.Int(column)
	if !ok || v < 0 {
		return false
	}
	return set.Contains(uint32(v))
}

func bitmapOf(ids []int64) *roaring.Bitmap {
	if len(ids) == 0 {
		return nil
	}
	bm := roaring.New()
	for _, id := range ids {
		bm.Add(uint32(id))
	}
	return bm
}

// FilterIterator lazily yields the rows passing a predicate, in input
// order. Fanned-out branches of one source item are evaluated per emitted
// row, so an item can partially pass; branches are deliberately not
// deduplicated.
type FilterIterator struct {
	rows []CompositeRow
	pred *Predicate
	cur  CompositeRow
	pos  int
}

// Filter wraps rows in a lazy iterator over those passing pred.
func Filter(rows []CompositeRow, pred *Predicate) *FilterIterator {
	return &FilterIterator{rows: rows, pred: pred}
}

// Next advances to the next passing row, reporting whether one exists.
func (it *FilterIterator) Next() bool {
	for it.pos < len(it.rows) {
		row := it.rows[it.pos]
		it.pos++
		if it.pred.Match(row) {
			it.cur = row
			return true
		}
	}
	return false
}

// Row returns the row the last successful Next stopped on.
func (it *FilterIterator) Row() CompositeRow {
	return it.cur
}
