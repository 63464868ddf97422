package httpsrv

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tutils/lcgviz/counter"
	"github.com/tutils/lcgviz/counter/period"
	"github.com/tutils/lcgviz/lcg"
)

// Session status values.
const (
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusDone    = "done"
)

// SessionManager tracks the animation streams currently open.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is one animation stream.
type Session struct {
	ID      string
	Params  lcg.Params
	Remote  string
	Started time.Time
	Steps   int

	status string
	frames counter.Counter
}

// SessionInfo is the JSON view of a Session.
type SessionInfo struct {
	ID           string     `json:"id"`
	Params       lcg.Params `json:"params"`
	Remote       string     `json:"remote"`
	Started      time.Time  `json:"started"`
	Status       string     `json:"status"`
	Steps        int        `json:"steps"`
	Frames       int64      `json:"frames"`
	FramesPerSec float64    `json:"frames_per_sec"`
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Start registers a new running session.
func (sm *SessionManager) Start(p lcg.Params, remote string, steps int) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	// Use first 8 chars of UUID for brevity
	id := uuid.New().String()[:8]
	for sm.sessions[id] != nil {
		id = uuid.New().String()[:8]
	}

	s := &Session{
		ID:      id,
		Params:  p,
		Remote:  remote,
		Started: time.Now(),
		Steps:   steps,
		status:  StatusRunning,
		frames:  period.NewPeriodCounter(time.Second),
	}
	sm.sessions[id] = s
	return s
}

// SetStatus updates the status of a session.
func (sm *SessionManager) SetStatus(id, status string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s, exists := sm.sessions[id]
	if !exists {
		return fmt.Errorf("session with ID %s not found", id)
	}
	s.status = status
	return nil
}

// Remove forgets a session.
func (sm *SessionManager) Remove(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// List returns all sessions, oldest first.
func (sm *SessionManager) List() []SessionInfo {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	infos := make([]SessionInfo, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		infos = append(infos, SessionInfo{
			ID:           s.ID,
			Params:       s.Params,
			Remote:       s.Remote,
			Started:      s.Started,
			Status:       s.status,
			Steps:        s.Steps,
			Frames:       s.frames.Value(),
			FramesPerSec: s.frames.RatePerSec(),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Started.Equal(infos[j].Started) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].Started.Before(infos[j].Started)
	})
	return infos
}
