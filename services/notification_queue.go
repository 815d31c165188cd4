package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"yanails-backend/models"
)

const defaultNotificationBuffer = 32

// NotificationQueue holds toasts until the client picks them up.
// Every message is handed out at most once.
type NotificationQueue struct {
	mu    sync.Mutex
	items []models.Notification
	limit int
	ready chan struct{}
	now   func() time.Time
}

func NewNotificationQueue(limit int) *NotificationQueue {
	if limit <= 0 {
		limit = defaultNotificationBuffer
	}
	return &NotificationQueue{
		limit: limit,
		ready: make(chan struct{}),
		now:   time.Now,
	}
}

// Push appends a message, dropping the oldest one when the queue is full.
func (q *NotificationQueue) Push(kind models.NotificationKind, msg string) models.Notification {
	n := models.Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	if len(q.items) >= q.limit {
		q.items = q.items[1:]
	}
	q.items = append(q.items, n)
	// wake every waiter; they race for the message under the lock
	close(q.ready)
	q.ready = make(chan struct{})
	q.mu.Unlock()

	return n
}

// Drain pops everything queued so far.
func (q *NotificationQueue) Drain() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		return []models.Notification{}
	}
	return out
}

// Next blocks until a message is available or ctx is done.
func (q *NotificationQueue) Next(ctx context.Context) (models.Notification, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			n := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return n, nil
		}
		ready := q.ready
		q.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return models.Notification{}, ctx.Err()
		}
	}
}

func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
