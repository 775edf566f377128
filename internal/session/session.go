package session

import "sync"

// Manager is the login-state gate consulted by cart mutations. The actual
// authentication flow is owned elsewhere; this only tracks the flag.
type Manager struct {
	mu       sync.RWMutex
	loggedIn bool
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetLoggedIn(loggedIn bool) {
	m.mu.Lock()
	m.loggedIn = loggedIn
	m.mu.Unlock()
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loggedIn
}
