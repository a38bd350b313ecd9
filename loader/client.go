// Package loader materializes the raw upstream tables: HTTP retrieval from
// the wago.tools CSV export, a snappy-compressed local cache, and decoding
// against the fixed table schemas.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
	"howett.net/ranger"

	"wagoextract/core"
)

// BaseURL is the wago.tools DB2 CSV export endpoint.
const BaseURL = "https://wago.tools/db2"

// Client downloads raw table CSVs. Requests across tables share one rate
// limiter so concurrent prefetch stays within the upstream's tolerance.
type Client struct {
	baseURL string
	limiter *rate.Limiter
}

// NewClient returns a client for the given endpoint; an empty baseURL means
// the public wago.tools export.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Limit(4), 4),
	}
}

// Fetch downloads one table's CSV payload. The read goes through a
// range-request reader so the content length is known up front and the
// transfer can be sized exactly.
func (c *Client) Fetch(ctx context.Context, table string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s", table), core.ErrRetrieval)
	}

	u, err := url.Parse(fmt.Sprintf("%s/%s/csv", c.baseURL, table))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s: bad url", table), core.ErrConfiguration)
	}

	// Probe availability up front: the range reader below reports
	// transport faults poorly, and a missing table must surface as a
	// retrieval failure, not a mangled payload.
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s", table), core.ErrRetrieval)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s", table), core.ErrRetrieval)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Mark(
			errors.Newf("fetch %s: upstream returned %s", table, resp.Status),
			core.ErrRetrieval)
	}

	reader, err := ranger.NewReader(&ranger.HTTPRanger{URL: u})
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s", table), core.ErrRetrieval)
	}
	length, err := reader.Length()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s: content length", table), core.ErrRetrieval)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(io.NewSectionReader(reader, 0, length), payload); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetch %s: read body", table), core.ErrRetrieval)
	}
	return payload, nil
}
