package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

// Credentials, oturumun kalıcılaştırılan kısmıdır: erişim ve yenileme
// jetonları ile sunucunun döndürdüğü ham kullanıcı bilgisi.
type Credentials struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
}

// TokenStore, oturum bilgilerini çalıştırmalar arasında saklar.
type TokenStore interface {
	Save(creds Credentials) error
	Load() (Credentials, error)
	Clear() error
}

// fileTokenStore, bilgileri yapılandırma dizininde 0600 izinli bir JSON
// dosyasında tutar.
type fileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (f *fileTokenStore) Save(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("oturum bilgisi kodlama: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("oturum dosyası yazma: %w", err)
	}
	return nil
}

func (f *fileTokenStore) Load() (Credentials, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Credentials{}, fmt.Errorf("oturum dosyası okuma: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("oturum dosyası çözme: %w", err)
	}
	return creds, nil
}

func (f *fileTokenStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("oturum dosyası silme: %w", err)
	}
	return nil
}

// memTokenStore, dosya katmanı çalışmadığında kullanılan süreç içi katmandır.
type memTokenStore struct {
	mu    sync.RWMutex
	creds Credentials
	set   bool
}

func (m *memTokenStore) Save(creds Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = creds
	m.set = true
	return nil
}

func (m *memTokenStore) Load() (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return Credentials{}, os.ErrNotExist
	}
	return m.creds, nil
}

func (m *memTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = Credentials{}
	m.set = false
	return nil
}

// TieredTokenStore, önce dosya katmanını dener; dosya yazılamıyor veya
// okunamıyorsa sessizce bellek katmanına düşer. Saklama sorunu loglanır ama
// hiçbir zaman çağırana hata olarak dönmez: oturum en kötü ihtimalle süreç
// ömrüyle sınırlı kalır.
type TieredTokenStore struct {
	primary TokenStore
	memory  *memTokenStore
	log     *slog.Logger
}

func NewTieredTokenStore(primary TokenStore, log *slog.Logger) *TieredTokenStore {
	return &TieredTokenStore{
		primary: primary,
		memory:  &memTokenStore{},
		log:     log.With(slog.String("component", "token_store")),
	}
}

func (t *TieredTokenStore) Save(creds Credentials) error {
	// Bellek katmanı her durumda güncel tutulur
	_ = t.memory.Save(creds)

	if err := t.primary.Save(creds); err != nil {
		t.log.Warn("oturum bilgisi kalıcı katmana yazılamadı, bellekte tutulacak", "error", err)
	}
	return nil
}

func (t *TieredTokenStore) Load() (Credentials, error) {
	creds, err := t.primary.Load()
	if err == nil {
		return creds, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.log.Warn("oturum bilgisi kalıcı katmandan okunamadı", "error", err)
	}
	return t.memory.Load()
}

func (t *TieredTokenStore) Clear() error {
	_ = t.memory.Clear()
	if err := t.primary.Clear(); err != nil {
		t.log.Warn("kalıcı oturum bilgisi silinemedi", "error", err)
	}
	return nil
}
