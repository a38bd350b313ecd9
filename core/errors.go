package core

import "github.com/cockroachdb/errors"

// Failure taxonomy for a pipeline run. Every error that escapes the
// pipeline is marked with exactly one of these sentinels so callers can
// classify it with errors.Is. None of them is recoverable mid-run: the
// first one aborts the run with no partial output.
var (
	// ErrRetrieval marks ingestion failures (transport or availability).
	ErrRetrieval = errors.New("table retrieval failed")

	// ErrSchemaMismatch marks loaded data that does not match the declared
	// table schema, which indicates upstream schema drift.
	ErrSchemaMismatch = errors.New("table schema mismatch")

	// ErrAmbiguousJoin marks a cardinality violation in a declared
	// one-to-one join stage. Picking an arbitrary match would corrupt
	// downstream filtering, so the run fails instead.
	ErrAmbiguousJoin = errors.New("ambiguous one-to-one join")

	// ErrConfiguration marks invalid run configuration: unknown filter
	// presets, unknown join-key columns. Detected before any I/O where
	// possible.
	ErrConfiguration = errors.New("invalid configuration")
)
