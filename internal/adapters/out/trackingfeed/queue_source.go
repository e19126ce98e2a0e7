// Package trackingfeed provides tracking update sources for the sync job.
package trackingfeed

import (
	"context"
	"sync"

	"fulfillment/internal/core/ports"
)

// QueueSource is an in-memory tracking source. Courier webhook receivers
// and tests push updates onto it; the sync job drains it on each poll.
type QueueSource struct {
	mu      sync.Mutex
	pending []ports.TrackingUpdate
}

// NewQueueSource creates an empty queue source.
func NewQueueSource() *QueueSource {
	return &QueueSource{}
}

// Push enqueues updates for the next poll.
func (s *QueueSource) Push(updates ...ports.TrackingUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, updates...)
}

// FetchUpdates returns every queued update and empties the queue.
func (s *QueueSource) FetchUpdates(_ context.Context) ([]ports.TrackingUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updates := s.pending
	s.pending = nil

	return updates, nil
}
