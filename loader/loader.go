package loader

import (
	"context"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"wagoextract/core"
	"wagoextract/schema"
)

// defaultWorkers bounds concurrent table downloads. The tables are
// independent, so prefetch is embarrassingly parallel, but the upstream
// export is rate limited.
const defaultWorkers = 4

// Loader materializes raw tables for the pipeline, preferring the local
// snappy cache over the network. It implements core.Loader.
type Loader struct {
	client  *Client
	rawDir  string
	workers int
}

func New(client *Client, rawDir string) *Loader {
	return &Loader{client: client, rawDir: rawDir, workers: defaultWorkers}
}

// Load materializes one table: cache hit, or fetch-then-cache.
func (l *Loader) Load(ctx context.Context, name string) (core.TableData, error) {
	t, ok := schema.Lookup(name)
	if !ok {
		return core.TableData{}, errors.Mark(
			errors.Newf("no schema declared for table %q", name),
			core.ErrConfiguration)
	}

	path := cachePath(l.rawDir, name)
	payload, err := readCache(path)
	if errors.Is(err, os.ErrNotExist) {
		payload, err = l.client.Fetch(ctx, name)
		if err != nil {
			return core.TableData{}, err
		}
		if err := writeCache(path, payload); err != nil {
			return core.TableData{}, errors.Mark(err, core.ErrRetrieval)
		}
	} else if err != nil {
		return core.TableData{}, errors.Mark(err, core.ErrRetrieval)
	}

	return decodeTable(t, payload)
}

// LoadAll fetches the named tables concurrently under the worker bound and
// returns only once every load has finished. Wait is the synchronization
// barrier between the ingestion phase and the first join stage: the join
// engine never observes a partially loaded set.
func (l *Loader) LoadAll(ctx context.Context, names []string) (map[string]core.TableData, error) {
	var mu sync.Mutex
	tables := make(map[string]core.TableData, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for _, name := range names {
		name := name
		g.Go(func() error {
			data, err := l.Load(ctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			tables[name] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
