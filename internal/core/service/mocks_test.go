package service

import (
	"context"
	"sync"
)

// recordingListener keeps every message it receives, in order.
type recordingListener struct {
	name     string
	journal  *[]string
	messages []string
	err      error
	mu       sync.Mutex
}

func newRecordingListener(name string, journal *[]string) *recordingListener {
	return &recordingListener{name: name, journal: journal}
}

func (l *recordingListener) Receive(ctx context.Context, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.journal != nil {
		*l.journal = append(*l.journal, l.name+"|"+message)
	}
	if l.err != nil {
		return l.err
	}
	l.messages = append(l.messages, message)
	return nil
}

func (l *recordingListener) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
