package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
)

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 100

// SecurityEvent is one observed security occurrence.
type SecurityEvent struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	Severity  catalog.Severity       `json:"severity"`
	Details   map[string]interface{} `json:"details"`
	Timestamp time.Time              `json:"timestamp"`
}

// Monitor is a bounded, append-only log of security events. It is the only
// mutable state in the engine; the mutex guarantees the capacity and
// insertion-order invariants under concurrent writers.
type Monitor struct {
	mu       sync.Mutex
	events   []SecurityEvent
	capacity int
}

// NewMonitor builds a monitor with the given capacity; zero or negative
// selects DefaultCapacity.
func NewMonitor(capacity int) *Monitor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Monitor{
		events:   make([]SecurityEvent, 0, capacity),
		capacity: capacity,
	}
}

// LogEvent appends an event, evicting the oldest entry when the ring is
// full. The stored details map is the caller's; callers must not mutate it
// afterwards.
func (m *Monitor) LogEvent(event string, severity catalog.Severity, details map[string]interface{}) SecurityEvent {
	entry := SecurityEvent{
		ID:        uuid.NewString(),
		Event:     event,
		Severity:  severity,
		Details:   details,
		Timestamp: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.events) == m.capacity {
		copy(m.events, m.events[1:])
		m.events = m.events[:len(m.events)-1]
		prometheus.EventEvictionsTotal.Inc()
	}
	m.events = append(m.events, entry)

	return entry
}

// Events returns a snapshot of the current contents, oldest first.
func (m *Monitor) Events() []SecurityEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]SecurityEvent, len(m.events))
	copy(snapshot, m.events)
	return snapshot
}

// Clear empties the ring.
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = m.events[:0]
}

// Len reports the current number of stored events.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.events)
}
