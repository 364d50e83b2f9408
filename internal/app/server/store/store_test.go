package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestAuthenticate(t *testing.T) {
	s := New(slog.Default())

	t.Run("email ile giriş", func(t *testing.T) {
		u, err := s.Authenticate("admin@btp.org.tr", "btp-demo")
		require.NoError(t, err)
		assert.Equal(t, "Saha Yöneticisi", u.FullName)
	})

	t.Run("kullanıcı adı ile giriş", func(t *testing.T) {
		u, err := s.Authenticate("admin", "btp-demo")
		require.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("yanlış parola", func(t *testing.T) {
		_, err := s.Authenticate("admin", "yanlis")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("bilinmeyen kullanıcı", func(t *testing.T) {
		_, err := s.Authenticate("kimse@btp.org.tr", "btp-demo")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestTokenLifecycle(t *testing.T) {
	s := New(slog.Default())

	access, refresh := s.IssueTokens("admin@btp.org.tr")
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	u, ok := s.ValidateAccess(access)
	require.True(t, ok)
	assert.Equal(t, "admin@btp.org.tr", u.Email)

	_, ok = s.ValidateAccess("uydurma")
	assert.False(t, ok)

	// Yenileme eski jetonu harcar
	newAccess, newRefresh, ok := s.Refresh(refresh)
	require.True(t, ok)
	assert.NotEqual(t, refresh, newRefresh)

	_, _, ok = s.Refresh(refresh)
	assert.False(t, ok, "harcanan yenileme jetonu tekrar kullanılamaz")

	_, ok = s.ValidateAccess(newAccess)
	assert.True(t, ok)

	s.RevokeAccess(access)
	_, ok = s.ValidateAccess(access)
	assert.False(t, ok)
}

func TestListPage(t *testing.T) {
	s := New(slog.Default())

	items, count, pages := s.ListPage(1, 25)
	assert.Equal(t, 57, count)
	assert.Equal(t, 3, pages)
	assert.Len(t, items, 25)

	items, _, _ = s.ListPage(3, 25)
	assert.Len(t, items, 7, "son sayfa artakalan satırları taşır")

	items, count, pages = s.ListPage(9, 25)
	assert.Empty(t, items, "aralık dışı sayfa boş liste döndürür")
	assert.Equal(t, 57, count)
	assert.Equal(t, 3, pages)
}

func TestCategorySplit(t *testing.T) {
	s := New(slog.Default())

	org := s.OrganizationMembers()
	sym := s.Sympathizers()

	assert.NotEmpty(t, org)
	assert.NotEmpty(t, sym)
	assert.Equal(t, 57, len(org)+len(sym))

	for _, p := range org {
		assert.NotEmpty(t, p.Path)
	}
	for _, p := range sym {
		assert.Empty(t, p.Path)
	}
}

func TestUpdatePerson(t *testing.T) {
	s := New(slog.Default())

	p, ok := s.Person("p001")
	require.True(t, ok)

	upd := PersonUpdate{
		FullName:    "Güncel İsim",
		PhoneNumber: "5329998877",
		Path:        p.Path,
		BirthDate:   "2024-06-01",
		Notes:       "arandı",
	}
	got, err := s.UpdatePerson("p001", upd)
	require.NoError(t, err)
	assert.Equal(t, "Güncel İsim", got.FullName)
	assert.Equal(t, "arandı", got.Notes)

	// Değişiklik kalıcı
	again, ok := s.Person("p001")
	require.True(t, ok)
	assert.Equal(t, "Güncel İsim", again.FullName)

	_, err = s.UpdatePerson("yok", upd)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
