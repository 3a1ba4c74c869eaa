package msgsearch

import (
	"context"

	"github.com/coregx/msgsearch/model"
)

// MessageSource defines the upstream collaborator the service fetches its
// corpus from. FetchAll is called exactly once, at startup.
//
// Implementations must return the complete record set in upstream order: if
// the backing endpoint paginates, the implementation is responsible for
// draining every page before returning. An error from FetchAll fails the
// whole startup build.
//
// Production implementations live under adapters/ (HTTP endpoint, SQL table);
// StaticSource serves embedded corpora and tests.
type MessageSource interface {
	FetchAll(ctx context.Context) ([]model.Message, error)
}

// StaticSource is a MessageSource backed by a fixed in-memory slice.
type StaticSource struct {
	messages []model.Message
}

// NewStaticSource creates a source that returns the given messages verbatim,
// in the given order.
func NewStaticSource(messages []model.Message) *StaticSource {
	return &StaticSource{messages: messages}
}

// FetchAll implements MessageSource.
func (s *StaticSource) FetchAll(_ context.Context) ([]model.Message, error) {
	return s.messages, nil
}
