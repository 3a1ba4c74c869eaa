package msgsearch

import (
	"fmt"
	"time"

	"github.com/coregx/msgsearch/retry"
)

// Option is a function that configures a Service.
// Used with the Options Pattern for flexible service construction.
//
// Example:
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(source),
//	    msgsearch.WithLogger(logger),
//	    msgsearch.WithSearcherFactory(msgsearch.NewPostingsSearcher), // optional
//	)
type Option func(*Service) error

// WithSource sets the upstream message source the startup load fetches from.
// The source is required and must not be nil.
func WithSource(source MessageSource) Option {
	return func(s *Service) error {
		if source == nil {
			return fmt.Errorf("source cannot be nil")
		}
		s.source = source
		return nil
	}
}

// WithLogger sets the logger instance for the service.
// Logger is required and must not be nil.
//
// Use NoopLogger for silent operation or implement Logger interface
// to integrate with your logging system (slog, zap, etc.).
func WithLogger(logger Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithSearcherFactory sets the search strategy built over the index.
// This is optional; the default is NewScanSearcher, the baseline linear
// scan. NewPostingsSearcher and external backends (see adapters/bleveindex)
// are drop-in replacements with identical search semantics.
func WithSearcherFactory(factory SearcherFactory) Option {
	return func(s *Service) error {
		if factory == nil {
			return fmt.Errorf("searcher factory cannot be nil")
		}
		s.searcherFactory = factory
		return nil
	}
}

// WithRetryStrategy sets a custom retry strategy for the startup fetch.
// This is optional; if not provided, retry.DefaultStrategy() is used.
func WithRetryStrategy(strategy retry.Strategy) Option {
	return func(s *Service) error {
		if strategy.MaxAttempts < 1 {
			return fmt.Errorf("retry strategy must allow at least one attempt")
		}
		s.retryStrategy = strategy
		return nil
	}
}

// WithFetchTimeout sets the per-attempt timeout for the startup fetch.
// This is optional; the default is 10 seconds.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Service) error {
		if timeout <= 0 {
			return fmt.Errorf("fetch timeout must be positive")
		}
		s.fetchTimeout = timeout
		return nil
	}
}

// WithNotifications sets the notification service for index lifecycle
// events. This is optional; the default is NoOpNotificationService.
func WithNotifications(notifications NotificationService) Option {
	return func(s *Service) error {
		if notifications == nil {
			return fmt.Errorf("notification service cannot be nil")
		}
		s.notifications = notifications
		return nil
	}
}
