package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/thumbsim/core/bus"
	"github.com/thumbsim/core/config"
	"github.com/thumbsim/core/core"
	"github.com/thumbsim/core/debugger"
	"github.com/thumbsim/core/trace"
)

var (
	ErrSessionNotFound      = errors.New("api: session not found")
	ErrSessionAlreadyExists = errors.New("api: session already exists")
)

// Session is one emulator session reachable over the API: its own
// memory bus, core, and debugger.Session, plus the bookkeeping the
// API layer needs on top (ID, creation time).
type Session struct {
	ID        string
	Memory    *bus.Memory
	Debugger  *debugger.Session
	CreatedAt time.Time
}

// SessionManager owns the set of live sessions, keyed by ID.
type SessionManager struct {
	sessions    map[string]*Session
	broadcaster *Broadcaster
	cfg         *config.Config
	mu          sync.RWMutex
}

func NewSessionManager(broadcaster *Broadcaster, cfg *config.Config) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		broadcaster: broadcaster,
		cfg:         cfg,
	}
}

// CreateSession arms a fresh core at req's entry point and stack top
// (a zero stack top falls back to the top of bus's stack region; a
// zero entry point is used as-is), wires its execution trace to
// broadcast over the session's
// WebSocket subscribers, and registers it under a random ID.
func (sm *SessionManager) CreateSession(req SessionCreateRequest) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	mem := bus.NewMemory()
	c := core.NewCore(id, mem, sharedTable())

	entry := req.EntryPoint
	stackTop := req.StackTop
	if stackTop == 0 {
		stackTop = bus.StackStart + bus.StackSize
	}
	c.SetEntry(entry, stackTop)

	var tr *trace.ExecutionTrace
	if sm.broadcaster != nil {
		tr = trace.New(NewEventWriter(sm.broadcaster, id))
		tr.Enabled = sm.cfg.Execution.EnableTrace
		tr.MaxEntries = sm.cfg.Trace.MaxEntries
	}

	session := &Session{
		ID:        id,
		Memory:    mem,
		Debugger:  debugger.NewSession(c, tr, sm.cfg.Debugger.HistorySize),
		CreatedAt: time.Now(),
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, exists := sm.sessions[id]; exists {
		return nil, ErrSessionAlreadyExists
	}
	sm.sessions[id] = session
	return session, nil
}

func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, exists := sm.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (sm *SessionManager) DestroySession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, exists := sm.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(sm.sessions, id)
	return nil
}

func (sm *SessionManager) ListSessions() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func generateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
