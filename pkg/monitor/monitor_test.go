package monitor

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuralTrust/ContentGuard/pkg/catalog"
)

func TestLogEvent(t *testing.T) {
	m := NewMonitor(10)

	entry := m.LogEvent("attack_detected", catalog.SeverityHigh, map[string]interface{}{
		"source": "detect",
	})

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "attack_detected", entry.Event)
	assert.Equal(t, catalog.SeverityHigh, entry.Severity)
	assert.False(t, entry.Timestamp.IsZero())

	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entry.ID, events[0].ID)
}

func TestEventIDsAreUnique(t *testing.T) {
	m := NewMonitor(10)

	a := m.LogEvent("a", catalog.SeverityLow, nil)
	b := m.LogEvent("b", catalog.SeverityLow, nil)
	assert.NotEqual(t, a.ID, b.ID)
}

// Writing past capacity evicts oldest-first and never grows the ring.
func TestCapacityEviction(t *testing.T) {
	m := NewMonitor(100)

	for i := 0; i < 105; i++ {
		m.LogEvent(fmt.Sprintf("event_%d", i), catalog.SeverityLow, nil)
	}

	assert.Equal(t, 100, m.Len())

	events := m.Events()
	require.Len(t, events, 100)
	assert.Equal(t, "event_5", events[0].Event)
	assert.Equal(t, "event_104", events[99].Event)
}

func TestDefaultCapacity(t *testing.T) {
	m := NewMonitor(0)

	for i := 0; i < DefaultCapacity+10; i++ {
		m.LogEvent("e", catalog.SeverityLow, nil)
	}
	assert.Equal(t, DefaultCapacity, m.Len())

	m = NewMonitor(-3)
	m.LogEvent("e", catalog.SeverityLow, nil)
	assert.Equal(t, 1, m.Len())
}

func TestEventsReturnsSnapshot(t *testing.T) {
	m := NewMonitor(10)
	m.LogEvent("first", catalog.SeverityLow, nil)

	snapshot := m.Events()
	snapshot[0].Event = "mutated"

	assert.Equal(t, "first", m.Events()[0].Event)
}

func TestClear(t *testing.T) {
	m := NewMonitor(10)
	m.LogEvent("a", catalog.SeverityLow, nil)
	m.LogEvent("b", catalog.SeverityMedium, nil)

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Events())
}

func TestConcurrentWriters(t *testing.T) {
	m := NewMonitor(100)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				m.LogEvent("concurrent", catalog.SeverityLow, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, m.Len())
}
