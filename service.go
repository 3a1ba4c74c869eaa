package msgsearch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coregx/msgsearch/model"
	"github.com/coregx/msgsearch/retry"
)

// snapshot holds the immutable state published after a successful build:
// the record store / index and the searcher strategy built on top of it.
// A snapshot is never mutated after publication.
type snapshot struct {
	idx      *Index
	searcher Searcher
}

// Service is the search service: it orchestrates the one-time startup load
// (fetch + index build) and answers paginated token queries against the
// published snapshot.
//
// Lifecycle: Load runs exactly once per Service, before the transport marks
// the service ready. Until Load succeeds, Search returns ErrNotReady and
// Health reports unready. After a successful Load, all shared state is
// immutable and Search/Health are safe for unlimited concurrent use.
//
// A failed Load is permanent: the service stays up but unready, surfacing
// the failure through Health rather than crash-looping.
type Service struct {
	source          MessageSource
	logger          Logger
	searcherFactory SearcherFactory
	retryStrategy   retry.Strategy
	fetchTimeout    time.Duration
	notifications   NotificationService

	loadOnce sync.Once
	loadErr  error
	snap     atomic.Pointer[snapshot]
}

// NewService creates a new search Service with the provided options.
//
// Required options:
//   - WithSource: the upstream message source
//   - WithLogger: logger instance
//
// Optional options:
//   - WithSearcherFactory: search strategy (default: NewScanSearcher)
//   - WithRetryStrategy: startup fetch retry behavior (default: retry.DefaultStrategy())
//   - WithFetchTimeout: per-attempt fetch timeout (default: 10s)
//   - WithNotifications: lifecycle event notifications (default: no-op)
//
// Example:
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(httpsource.New(baseURL)),
//	    msgsearch.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := svc.Load(ctx); err != nil {
//	    log.Printf("load failed: %v", err)
//	}
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		searcherFactory: NewScanSearcher,
		retryStrategy:   retry.DefaultStrategy(),
		fetchTimeout:    10 * time.Second,
		notifications:   &NoOpNotificationService{},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply service option", err)
		}
	}

	// Validate required dependencies
	if s.source == nil {
		return nil, NewError(ErrCodeConfiguration, "MessageSource is required (use WithSource)")
	}
	if s.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithLogger)")
	}

	return s, nil
}

// Load performs the one-time startup load: fetch the full record set from
// the source, build the index, and atomically publish the snapshot.
//
// Load is idempotent: only the first call does work, subsequent calls return
// the first call's result. There is no reload; the corpus is static for the
// process lifetime.
func (s *Service) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		s.loadErr = s.load(ctx)
	})
	return s.loadErr
}

func (s *Service) load(ctx context.Context) error {
	messages, err := s.fetchAll(ctx)
	if err != nil {
		loadErr := NewErrorWithCause(ErrCodeSource, "failed to fetch messages from source", err)
		s.notifyLoadFailed(ctx, loadErr)
		return loadErr
	}
	s.logger.Infof("fetched %d messages from source", len(messages))

	idx, err := BuildIndex(messages)
	if err != nil {
		s.notifyLoadFailed(ctx, err)
		return err
	}

	searcher, err := s.searcherFactory(idx)
	if err != nil {
		buildErr := NewErrorWithCause(ErrCodeIndex, "failed to build searcher", err)
		s.notifyLoadFailed(ctx, buildErr)
		return buildErr
	}

	s.snap.Store(&snapshot{idx: idx, searcher: searcher})
	s.logger.Infof("search index built: %d messages", idx.Len())

	if err := s.notifications.NotifyIndexReady(ctx, idx.Len()); err != nil {
		s.logger.Warnf("index-ready notification failed: %v", err)
	}
	return nil
}

// fetchAll runs the upstream fetch under the per-attempt timeout, retrying
// per the configured strategy.
func (s *Service) fetchAll(ctx context.Context) ([]model.Message, error) {
	var lastErr error
	for attempt := 0; s.retryStrategy.IsRetryable(attempt); attempt++ {
		if attempt > 0 {
			delay := s.retryStrategy.CalculateRetryDelay(attempt - 1)
			s.logger.Warnf("fetch attempt %d failed, retrying in %v: %v", attempt, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		messages, err := s.source.FetchAll(fetchCtx)
		cancel()
		if err == nil {
			return messages, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *Service) notifyLoadFailed(ctx context.Context, loadErr error) {
	if err := s.notifications.NotifyLoadFailed(ctx, loadErr); err != nil {
		s.logger.Warnf("load-failed notification failed: %v", err)
	}
}

// Search answers one paginated query against the published snapshot.
//
// The request is validated first (page ≥ 1, 1 ≤ page_size ≤ 100, non-empty
// query); invalid requests are rejected with a VALIDATION_ERROR, never
// clamped. Before the snapshot is published, Search returns ErrNotReady.
//
// A message matches iff every query token is an exact element of the
// message's tokenized searchable text (AND semantics). A query that
// tokenizes to nothing (whitespace or punctuation only) matches nothing by
// design. Matches keep the corpus's original received order, so identical
// requests always return identical pages. A page offset past the last match
// yields an empty items list with the true total; it is not an error.
func (s *Service) Search(_ context.Context, req model.SearchRequest) (model.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return model.SearchResponse{}, NewErrorWithCause(ErrCodeValidation, "invalid search request", err)
	}

	snap := s.snap.Load()
	if snap == nil {
		return model.SearchResponse{}, ErrNotReady
	}

	resp := model.SearchResponse{
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    []model.Message{},
	}

	tokens := Tokenize(req.Query)
	if len(tokens) == 0 {
		return resp, nil
	}

	matches, err := snap.searcher.Search(tokens)
	if err != nil {
		return model.SearchResponse{}, NewErrorWithCause(ErrCodeIndex, "searcher failed", err)
	}

	resp.Total = len(matches)
	// Compare against the last populated page before computing the offset:
	// (page-1)*page_size would overflow for huge page numbers.
	if resp.Total > 0 && req.Page <= (resp.Total-1)/req.PageSize+1 {
		start := (req.Page - 1) * req.PageSize
		end := start + req.PageSize
		if end > resp.Total {
			end = resp.Total
		}
		resp.Items = snap.idx.Messages(matches[start:end])
	}
	return resp, nil
}

// Health reports whether the startup build has completed and how many
// messages the index holds. It reflects "not ready" truthfully both before
// Load completes and after a failed Load.
func (s *Service) Health() model.Health {
	snap := s.snap.Load()
	if snap == nil {
		return model.Health{}
	}
	return model.Health{Ready: true, IndexedMessages: snap.idx.Len()}
}
