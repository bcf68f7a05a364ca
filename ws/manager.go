package ws

import (
	"sync"

	"dastawez_backend/internal/logger"
)

// Manager tracks live connections. A user may hold several at once
// (multiple tabs), so clients are keyed per user.
type Manager struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]struct{})
			}
			m.clients[client.UserID][client] = struct{}{}
			m.mu.Unlock()
			logger.Debug("ws client connected", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.Send)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
				}
			}
			m.mu.Unlock()
			logger.Debug("ws client disconnected", "user_id", client.UserID)
		}
	}
}

// PushToUser delivers a payload to every live connection of one user.
// Offline users are skipped; the notification feed is the durable path.
func (m *Manager) PushToUser(userID string, payload interface{}) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		m.send(client, payload)
	}
}

func (m *Manager) send(client *Client, payload interface{}) {
	select {
	case client.Send <- payload:
	default:
		// Send buffer full, drop the connection rather than block.
		go func() { m.unregister <- client }()
	}
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, conns := range m.clients {
		total += len(conns)
	}
	return total
}
