package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	NotificationSuccess = "success"
	NotificationError = "error"
)

type Notification struct {
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier is the transient user-facing notification collaborator.
type Notifier interface {
	Success(text string)
	Error(text string)
}

const maxPendingNotifications = 50

// Feed collects notifications until the dashboard drains them over HTTP,
// the server-side analog of the web client's toast queue. Oldest entries
// are dropped once the bound is hit.
type Feed struct {
	logger *zap.Logger

	mu sync.Mutex
	pending []Notification
}

func NewFeed(logger *zap.Logger) *Feed {
	return &Feed{
		logger: logger,
	}
}

func (f *Feed) Success(text string) {
	f.push(Notification{Kind: NotificationSuccess, Text: text, Timestamp: time.Now()})
}

func (f *Feed) Error(text string) {
	f.logger.Sugar().Warnf("notification: %s", text)
	f.push(Notification{Kind: NotificationError, Text: text, Timestamp: time.Now()})
}

func (f *Feed) push(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = append(f.pending, n)
	if len(f.pending) > maxPendingNotifications {
		f.pending = f.pending[len(f.pending)-maxPendingNotifications:]
	}
}

// Drain returns and clears the pending notifications.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	drained := f.pending
	f.pending = nil
	return drained
}
