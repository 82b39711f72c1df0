package flow

import (
	"sync"

	"github.com/google/uuid"
)

// Manager хранит активные сессии записи по идентификатору
type Manager struct {
	store        BookingStore
	submitter    Submitter
	timeProvider TimeProvider
	log          Logger

	mu       sync.Mutex
	sessions map[string]*Flow
}

// NewManager создает новый экземпляр Manager
func NewManager(store BookingStore, submitter Submitter, timeProvider TimeProvider, log Logger) *Manager {
	return &Manager{
		store:        store,
		submitter:    submitter,
		timeProvider: timeProvider,
		log:          log,
		sessions:     make(map[string]*Flow),
	}
}

// Start открывает новую сессию и возвращает ее идентификатор
func (m *Manager) Start() (string, *Flow) {
	id := uuid.NewString()
	f := New(m.store, m.submitter, m.timeProvider, m.log)

	m.mu.Lock()
	m.sessions[id] = f
	m.mu.Unlock()

	m.log.Info("flow: session started id=%s", id)
	return id, f
}

// Get возвращает сессию по идентификатору
func (m *Manager) Get(id string) (*Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return f, nil
}

// Close завершает сессию и освобождает ее идентификатор
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.log.Info("flow: session closed id=%s", id)
	return nil
}

// Count возвращает число активных сессий
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
