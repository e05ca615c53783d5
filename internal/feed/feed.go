// Package feed fetches the external XML documents the booking flow is built
// on: the static room catalog and the list of existing bookings. Both are
// plain GET endpoints returning XML; decoding is permissive, so records with
// missing sub-fields come back with empty strings instead of failing the
// whole document.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidewater-dev/hotel-booking-backend/internal/metrics"
)

// Client fetches and decodes XML feeds.
type Client struct {
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a feed client. The timeout bounds each whole fetch, so a
// dead feed fails the search instead of hanging it.
func NewClient(timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Fetch GETs url and decodes the XML body into v. The name labels the feed
// in logs and metrics.
func (c *Client) Fetch(ctx context.Context, name, url string, v any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build %s feed request: %w", name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s feed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s feed: unexpected status %d", name, resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s feed: %w", name, err)
	}

	elapsed := time.Since(start)
	metrics.ObserveFeedFetch(name, elapsed.Seconds())
	c.log.Debug().Str("feed", name).Dur("elapsed", elapsed).Msg("feed fetched")

	return nil
}
