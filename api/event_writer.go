package api

import (
	"bytes"
	"sync"
)

// EventWriter is an io.Writer that forwards every write as a trace
// broadcast event, so a trace.ExecutionTrace can be pointed at one to
// stream its lines to WebSocket subscribers instead of (or as well
// as) a file.
type EventWriter struct {
	broadcaster *Broadcaster
	sessionID   string
	buffer      bytes.Buffer
	mu          sync.Mutex
}

func NewEventWriter(broadcaster *Broadcaster, sessionID string) *EventWriter {
	return &EventWriter{broadcaster: broadcaster, sessionID: sessionID}
}

func (w *EventWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.buffer.Write(p)
	if err == nil && n > 0 && w.broadcaster != nil {
		w.broadcaster.BroadcastTrace(w.sessionID, string(p))
	}
	return n, err
}

// Buffer returns everything written so far without clearing it.
func (w *EventWriter) Buffer() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.String()
}
