// Package httpsource implements the msgsearch.MessageSource interface over a
// JSON HTTP endpoint.
//
// The endpoint is expected to return the full record set in one response:
//
//	{ "total": 2, "items": [ { "id": "...", "user_id": "...",
//	  "user_name": "...", "timestamp": "...", "message": "..." }, ... ] }
//
// The decode is strict: unknown shapes fail the fetch (and with it the
// startup build) rather than being accessed dynamically.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	msgsearch "github.com/coregx/msgsearch"
	"github.com/coregx/msgsearch/model"
)

// DefaultPath is the path of the messages endpoint relative to the base URL.
const DefaultPath = "/messages"

// Source fetches the message corpus from an HTTP endpoint.
type Source struct {
	baseURL string
	path    string
	client  *http.Client
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithHTTPClient sets a custom HTTP client, e.g. to tune transport settings.
// Timeouts are handled by the caller through the fetch context, so the
// default client carries none.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(s *Source) {
		s.client = client
	}
}

// WithPath overrides the messages endpoint path (default "/messages").
func WithPath(path string) SourceOption {
	return func(s *Source) {
		s.path = path
	}
}

// New creates a Source fetching from baseURL + "/messages".
//
// The default client follows redirects, which the upstream uses (307 to the
// canonical URL).
func New(baseURL string, opts ...SourceOption) *Source {
	s := &Source{
		baseURL: baseURL,
		path:    DefaultPath,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) url() string {
	return s.baseURL + s.path
}

// FetchAll implements msgsearch.MessageSource. It performs a single GET and
// decodes the complete record set, failing on any transport error, non-2xx
// status, or schema mismatch.
func (s *Source) FetchAll(ctx context.Context) ([]model.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(), nil)
	if err != nil {
		return nil, msgsearch.NewErrorWithCause(msgsearch.ErrCodeSource, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, msgsearch.NewErrorWithCause(msgsearch.ErrCodeSource, "failed to fetch messages", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, msgsearch.NewError(msgsearch.ErrCodeSource,
			fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, s.url()))
	}

	var payload model.SourceResponse
	dec := json.NewDecoder(resp.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, msgsearch.NewErrorWithCause(msgsearch.ErrCodeSource, "malformed messages response", err)
	}

	return payload.Items, nil
}
