package loader

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
)

// cacheExt marks raw-cache files: the upstream CSV payload wrapped in
// snappy stream framing.
const cacheExt = ".csv.sz"

func cachePath(dir, table string) string {
	return filepath.Join(dir, table+cacheExt)
}

func readCache(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	payload, err := io.ReadAll(snappy.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "decompress cache %s", path)
	}
	return payload, nil
}

func writeCache(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create cache dir for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create cache %s", path)
	}
	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write(payload); err != nil {
		w.Close()
		f.Close()
		return errors.Wrapf(err, "compress cache %s", path)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flush cache %s", path)
	}
	return errors.Wrapf(f.Close(), "close cache %s", path)
}
