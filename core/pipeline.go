package core

import (
	"context"

	"github.com/cockroachdb/errors"

	"wagoextract/schema"
)

// Loader supplies fully materialized raw tables. LoadAll must not return
// until every requested table has finished loading; the join phase assumes
// a complete, immutable set.
type Loader interface {
	LoadAll(ctx context.Context, names []string) (map[string]TableData, error)
}

// Result groups the filtered output records by category preset name.
type Result map[string][]Record

// Pipeline coordinates one extraction run: load, denormalize, filter,
// project. It owns the raw tables for the duration of the run and
// propagates the first fatal error without attempting partial recovery.
type Pipeline struct {
	loader Loader
}

func NewPipeline(loader Loader) *Pipeline {
	return &Pipeline{loader: loader}
}

// Run extracts the requested category presets. Configuration faults
// (unknown presets) are reported before any table is fetched.
func (p *Pipeline) Run(ctx context.Context, categories []string) (Result, error) {
	type compiled struct {
		preset schema.Preset
		pred   *Predicate
	}
	predicates := make([]compiled, 0, len(categories))
	for _, name := range categories {
		preset, ok := schema.ResolvePreset(name)
		if !ok {
			return nil, errors.Mark(
				errors.Newf("unknown category preset %q", name),
				ErrConfiguration)
		}
		pred, err := NewPredicate(preset)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, compiled{preset: preset, pred: pred})
	}

	tables, err := p.loader.LoadAll(ctx, schema.RequiredTables())
	if err != nil {
		return nil, err
	}
	for _, name := range schema.RequiredTables() {
		if _, ok := tables[name]; !ok {
			return nil, errors.Mark(
				errors.Newf("loader returned no data for table %s", name),
				ErrRetrieval)
		}
	}

	rows, err := Denormalize(tables[schema.TableItemSparse], joinChain(tables))
	if err != nil {
		return nil, err
	}
	// The raw tables are dead once the chain has consumed them.
	tables = nil

	result := make(Result, len(predicates))
	for _, c := range predicates {
		records := result[c.preset.Name]
		for it := Filter(rows, c.pred); it.Next(); {
			records = append(records, BuildRecord(it.Row()))
		}
		result[c.preset.Name] = records
	}
	return result, nil
}

// joinChain is the fixed denormalization chain: class/subclass codes
// attach one-to-one, then the effect chain fans out per item effect and
// tolerates effects without a spell category.
func joinChain(tables map[string]TableData) []JoinStage {
	return []JoinStage{
		{
			Right:       tables[schema.TableItem],
			LeftKey:     "ID",
			RightKey:    "ID",
			Cardinality: OneToOne,
			Policy:      InnerJoin,
		},
		{
			Right:       tables[schema.TableItemXItemEffect],
			LeftKey:     "ID",
			RightKey:    "ItemID",
			Cardinality: OneToMany,
			Policy:      LeftJoin,
		},
		{
			Right:       tables[schema.TableItemEffect],
			LeftKey:     "ItemEffectID",
			RightKey:    "ID",
			Cardinality: OneToMany,
			Policy:      LeftJoin,
		},
		{
			Right:       tables[schema.TableSpellCategory],
			LeftKey:     "SpellCategoryID",
			RightKey:    "ID",
			Cardinality: OneToOne,
			Policy:      LeftJoin,
		},
	}
}
