package api

import "sync"

// EventType distinguishes the kinds of events a session broadcasts to
// its WebSocket subscribers.
type EventType string

const (
	// EventTypeState is a register/PC/flags snapshot, sent after every
	// step or continue.
	EventTypeState EventType = "state"
	// EventTypeTrace is a line from the session's execution trace.
	EventTypeTrace EventType = "trace"
	// EventTypeExecution is a breakpoint hit or a fatal halt.
	EventTypeExecution EventType = "event"
)

// BroadcastEvent is one message fanned out to subscribers.
type BroadcastEvent struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"sessionId"`
	Data      map[string]interface{} `json:"data"`
}

// Subscription is one client's filter over the event stream: by
// session ID (empty means all sessions) and by event type (empty
// means all types).
type Subscription struct {
	SessionID  string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster fans events out to every matching subscription. Built
// around a single goroutine reading from register/unregister/broadcast
// channels so the subscription map never needs its own lock beyond
// what protects reads from other goroutines (SubscriptionCount).
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.SessionID != "" && sub.SessionID != event.SessionID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// slow client, drop
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

func (b *Broadcaster) Subscribe(sessionID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool, len(eventTypes))
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}
	sub := &Subscription{
		SessionID:  sessionID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64),
	}
	b.register <- sub
	return sub
}

func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
		// broadcaster overwhelmed, drop rather than block the caller
	}
}

// BroadcastState sends a register/PC snapshot for sessionID.
func (b *Broadcaster) BroadcastState(sessionID string, data map[string]interface{}) {
	b.Broadcast(BroadcastEvent{Type: EventTypeState, SessionID: sessionID, Data: data})
}

// BroadcastExecutionEvent sends a breakpoint-hit or halt notification.
func (b *Broadcaster) BroadcastExecutionEvent(sessionID string, eventName string, details map[string]interface{}) {
	data := make(map[string]interface{}, len(details)+1)
	data["event"] = eventName
	for k, v := range details {
		data[k] = v
	}
	b.Broadcast(BroadcastEvent{Type: EventTypeExecution, SessionID: sessionID, Data: data})
}

// BroadcastTrace forwards one execution-trace line.
func (b *Broadcaster) BroadcastTrace(sessionID string, line string) {
	b.Broadcast(BroadcastEvent{
		Type:      EventTypeTrace,
		SessionID: sessionID,
		Data:      map[string]interface{}{"line": line},
	})
}

func (b *Broadcaster) Close() {
	close(b.done)
}

func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
