package store

import (
	"log/slog"
	"sync"
	"time"

	"sensorhub-server/internal/modules/reading/types"
)

// TimestampFormat is the layout used for the server-assigned timestamp on
// every stored reading.
const TimestampFormat = time.RFC3339

// Store holds the latest reading and replaces it atomically on each update.
// Implementations must be safe for concurrent access: a reader must never
// observe a reading mixing fields from two different updates.
type Store interface {
	// Set replaces the stored reading entirely with the given values and a
	// fresh server-assigned timestamp. Nil fields are stored as null.
	// Always succeeds; the stored reading is returned.
	Set(temperature, humidity *float64) types.Reading

	// Get returns the current reading verbatim, including nulls if no
	// update has occurred yet.
	Get() types.Reading

	// Subscribe returns a buffered channel receiving every stored reading.
	// Slow consumers may miss updates. Caller must Unsubscribe when done.
	Subscribe() <-chan types.Reading

	// Unsubscribe removes a subscription and closes its channel. Safe to
	// call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan types.Reading)
}

// MemoryStore is the in-memory Store implementation. The zero reading (all
// fields null) is the state before the first update; updates overwrite it
// wholesale, never field-by-field.
type MemoryStore struct {
	mu      sync.RWMutex
	current types.Reading

	subMu       sync.RWMutex
	subscribers map[chan types.Reading]struct{}

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subscribers: make(map[chan types.Reading]struct{}),
		now:         time.Now,
	}
}

func (m *MemoryStore) Set(temperature, humidity *float64) types.Reading {
	ts := m.now().Format(TimestampFormat)
	reading := types.Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Timestamp:   &ts,
	}

	m.mu.Lock()
	m.current = reading
	m.mu.Unlock()

	slog.Info("reading updated",
		"temperature", deref(temperature),
		"humidity", deref(humidity),
		"timestamp", ts,
	)

	m.notifySubscribers(reading)
	return reading
}

func (m *MemoryStore) Get() types.Reading {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *MemoryStore) Subscribe() <-chan types.Reading {
	ch := make(chan types.Reading, 100)

	m.subMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subMu.Unlock()

	return ch
}

func (m *MemoryStore) Unsubscribe(ch <-chan types.Reading) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers is non-blocking: if a subscriber's buffer is full the
// update is dropped for that subscriber rather than blocking Set.
func (m *MemoryStore) notifySubscribers(reading types.Reading) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- reading:
		default:
		}
	}
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
