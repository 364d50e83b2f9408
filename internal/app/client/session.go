package client

import (
	"sync"

	"golang.org/x/exp/slog"
)

// Session, çalışan tek istemcinin oturum durumunu taşıyan açık nesnedir;
// paket seviyesinde gizli bir jeton yoktur. Başlangıçta saklanan bilgiler
// bir kez yüklenir, sonrasında yalnızca giriş/çıkış işlemleri yazar.
// Jeton kaydı tamamlanmadan SetCredentials dönmez; böylece girişten hemen
// sonra atılan istekler jetonu hazır bulur.
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	creds Credentials
	log   *slog.Logger
}

func NewSession(store TokenStore, log *slog.Logger) *Session {
	s := &Session{
		store: store,
		log:   log.With(slog.String("component", "session")),
	}
	if creds, err := store.Load(); err == nil {
		s.creds = creds
		s.log.Debug("kayıtlı oturum yüklendi")
	}
	return s
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.RefreshToken
}

func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// SetCredentials, yeni oturum bilgilerini belleğe ve saklama katmanına yazar.
func (s *Session) SetCredentials(creds Credentials) {
	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()

	_ = s.store.Save(creds)
}

// Clear, oturumu hem bellekte hem saklama katmanında temizler. 401 alan her
// istek ve çıkış işlemi burayı çağırır.
func (s *Session) Clear() {
	s.mu.Lock()
	s.creds = Credentials{}
	s.mu.Unlock()

	_ = s.store.Clear()
}
