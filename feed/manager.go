package feed

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager 视图会话注册表。每个前端房间页对应一个会话，
// 以 uuid 作为 view_id；长时间无人访问的会话会被回收。
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewManager 创建注册表并启动空闲回收。idleTTL <= 0 时默认 5 分钟。
func NewManager(idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = 5 * time.Minute
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Register 登记会话并分配 view_id。
func (m *Manager) Register(s *Session) string {
	id := uuid.New().String()
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id
}

// Get 取会话并刷新访问时间。
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.Touch()
	}
	return s, ok
}

// Close 关闭并移除指定会话。
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Shutdown 关闭全部会话，停止回收协程。
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.idleTTL)
			var expired []*Session
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.idleSince().Before(cutoff) {
					delete(m.sessions, id)
					expired = append(expired, s)
				}
			}
			m.mu.Unlock()
			for _, s := range expired {
				log.Printf("[feed] 回收空闲会话 room %s", s.RoomID())
				s.Close()
			}
		}
	}
}
