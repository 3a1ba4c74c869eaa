package msgsearch

import "context"

// NotificationService defines an optional interface for observing index
// lifecycle events (successful build, failed load).
//
// Implementations might post to Slack, page an operator, or feed a
// monitoring system. Notification errors are logged and otherwise ignored;
// they never affect readiness.
type NotificationService interface {
	// NotifyIndexReady is called once, after the startup build succeeds.
	NotifyIndexReady(ctx context.Context, indexedMessages int) error

	// NotifyLoadFailed is called when the startup load gives up. The service
	// stays permanently unready after this.
	NotifyLoadFailed(ctx context.Context, err error) error
}

// NoOpNotificationService is a no-op implementation of NotificationService.
// Use this when notifications are not needed.
type NoOpNotificationService struct{}

// NotifyIndexReady does nothing.
func (n *NoOpNotificationService) NotifyIndexReady(_ context.Context, _ int) error {
	return nil
}

// NotifyLoadFailed does nothing.
func (n *NoOpNotificationService) NotifyLoadFailed(_ context.Context, _ error) error {
	return nil
}

// LoggingNotificationService is a simple implementation that logs
// notifications.
type LoggingNotificationService struct {
	logger Logger
}

// NewLoggingNotificationService creates a new LoggingNotificationService.
func NewLoggingNotificationService(logger Logger) *LoggingNotificationService {
	return &LoggingNotificationService{logger: logger}
}

// NotifyIndexReady logs the successful build.
func (n *LoggingNotificationService) NotifyIndexReady(_ context.Context, indexedMessages int) error {
	n.logger.Infof("search index ready: %d messages indexed", indexedMessages)
	return nil
}

// NotifyLoadFailed logs the failed load.
func (n *LoggingNotificationService) NotifyLoadFailed(_ context.Context, err error) error {
	n.logger.Errorf("startup load failed, service will stay unready: %v", err)
	return nil
}
