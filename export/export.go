// Package export renders filtered output records into their interchange
// formats: CSV (always, one file per category), a Lua addon module, and
// parquet. File names derive deterministically from the category name.
package export

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"wagoextract/core"
)

// Options selects the artifacts one run produces.
type Options struct {
	// Dir receives every artifact.
	Dir string
	// Namespace is the Lua global table identifier.
	Namespace string
	// Lua enables Lua module generation.
	Lua bool
	// SplitLua writes one Lua file per category instead of a merged
	// data.lua.
	SplitLua bool
	// Parquet enables parquet generation, one file per category.
	Parquet bool
}

// Artifact describes one written output file, for the run summary.
type Artifact struct {
	Kind  string
	Name  string
	Items int
}

// Write renders every category of the result under opts.Dir and returns
// the artifacts in deterministic (category-sorted) order. Any failure
// aborts the remaining writes; there is no partial-success reporting.
func Write(result core.Result, opts Options) ([]Artifact, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output dir %s", opts.Dir)
	}

	var artifacts []Artifact
	for _, name := range sortedCategoryNames(result) {
		records := result[name]
		if len(records) == 0 {
			continue
		}

		csvName := name + ".csv"
		if err := writeFile(filepath.Join(opts.Dir, csvName), func(f *os.File) error {
			return WriteCSV(f, records)
		}); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Kind: "CSV Data", Name: csvName, Items: len(records)})

		if opts.Parquet {
			pqName := name + ".parquet"
			if err := writeFile(filepath.Join(opts.Dir, pqName), func(f *os.File) error {
				return WriteParquet(f, records)
			}); err != nil {
				return nil, err
			}
			artifacts = append(artifacts, Artifact{Kind: "Parquet Data", Name: pqName, Items: len(records)})
		}

		if opts.Lua && opts.SplitLua {
			luaName := name + ".lua"
			part := core.Result{name: records}
			if err := writeFile(filepath.Join(opts.Dir, luaName), func(f *os.File) error {
				return WriteLua(f, opts.Namespace, part)
			}); err != nil {
				return nil, err
			}
			artifacts = append(artifacts, Artifact{Kind: "Lua Module", Name: luaName, Items: len(records)})
		}
	}

	if opts.Lua && !opts.SplitLua {
		total := 0
		for _, records := range result {
			total += len(records)
		}
		if err := writeFile(filepath.Join(opts.Dir, "data.lua"), func(f *os.File) error {
			return WriteLua(f, opts.Namespace, result)
		}); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Kind: "Lua Module", Name: "data.lua", Items: total})
	}

	return artifacts, nil
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := render(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
