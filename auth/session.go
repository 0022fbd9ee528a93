package auth

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore はプロセス内のログインセッションを保持します。
// グローバル変数ではなく main で生成してハンドラに渡します。
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string // token -> username
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

// Create は新しいセッショントークンを発行します。
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()
	return token
}

// Get はトークンに対応するユーザー名を返します。
func (s *SessionStore) Get(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.sessions[token]
	return username, ok
}

// Delete はセッションを破棄します。存在しないトークンは無視されます。
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
