package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	store := NewFileTokenStore(path)

	creds := Credentials{AccessToken: "erisim", RefreshToken: "yenileme"}
	require.NoError(t, store.Save(creds))

	// Oturum dosyası yalnızca sahibine açık olmalı
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.Error(t, err)

	// Olmayan dosyayı tekrar silmek hata değildir
	assert.NoError(t, store.Clear())
}

// failingStore, kalıcı katman arızasını taklit eder.
type failingStore struct{}

func (failingStore) Save(Credentials) error   { return errors.New("disk salt okunur") }
func (failingStore) Load() (Credentials, error) { return Credentials{}, errors.New("disk salt okunur") }
func (failingStore) Clear() error             { return errors.New("disk salt okunur") }

func TestTieredTokenStoreDegradesSilently(t *testing.T) {
	store := NewTieredTokenStore(failingStore{}, slog.Default())

	creds := Credentials{AccessToken: "erisim"}

	// Dosya katmanı arızalı olsa da kaydetme hata döndürmez
	require.NoError(t, store.Save(creds))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.Error(t, err)
}

func TestTieredTokenStorePrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	store := NewTieredTokenStore(NewFileTokenStore(path), slog.Default())

	creds := Credentials{AccessToken: "erisim", RefreshToken: "yenileme"}
	require.NoError(t, store.Save(creds))

	// Yeni süreçte (yeni bellek katmanı) dosya katmanından okunabilmeli
	fresh := NewTieredTokenStore(NewFileTokenStore(path), slog.Default())
	got, err := fresh.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestSessionLifecycle(t *testing.T) {
	store := NewTieredTokenStore(failingStore{}, slog.Default())
	session := NewSession(store, slog.Default())

	assert.False(t, session.Authenticated())

	session.SetCredentials(Credentials{AccessToken: "a", RefreshToken: "r"})
	assert.True(t, session.Authenticated())
	assert.Equal(t, "a", session.AccessToken())
	assert.Equal(t, "r", session.RefreshToken())

	// Yeni oturum nesnesi saklanan bilgiyi bellek katmanından devralamaz,
	// ama aynı depoyu paylaşan oturum devralır
	session2 := NewSession(store, slog.Default())
	assert.True(t, session2.Authenticated())

	session.Clear()
	assert.False(t, session.Authenticated())
}
