package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

var (
	// ErrInvalidCredentials - kullanıcı yok ya da parola tutmuyor
	ErrInvalidCredentials = errors.New("kullanıcı adı veya parola hatalı")
	// ErrPersonNotFound - istenen kişi kayıtlı değil
	ErrPersonNotFound = errors.New("kişi bulunamadı")
)

// Person, üretim arka ucunun satır şemasını taklit eder; istemcinin
// eşleyicisi bu gevşek şekli kanonik modele çevirir.
type Person struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Path        string `json:"path,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// PersonUpdate, güncelleme ucunun kabul ettiği alanlardır.
type PersonUpdate struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Path        string `json:"path,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// User, tanıtım kurulumunun yerleşik kullanıcısıdır.
type User struct {
	Email        string
	Username     string
	FullName     string
	PasswordHash []byte
}

// Store, tanıtım arka ucunun tüm durumu: tohumlanmış kişi listesi,
// kullanıcılar ve verilmiş jetonlar. Her şey bellekte, RWMutex korumalı;
// kalıcılık bilinçli olarak kapsam dışında.
type Store struct {
	mu      sync.RWMutex
	people  []Person
	users   map[string]User   // email ve username ile ayrı ayrı indekslenir
	access  map[string]string // erişim jetonu -> email
	refresh map[string]string // yenileme jetonu -> email
	log     *slog.Logger
}

func New(log *slog.Logger) *Store {
	s := &Store{
		users:   make(map[string]User),
		access:  make(map[string]string),
		refresh: make(map[string]string),
		log:     log.With(slog.String("component", "store")),
	}
	s.seed()
	return s
}

// AddUser, bcrypt özetli bir kullanıcı kaydeder.
func (s *Store) AddUser(email, username, fullName, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := User{Email: email, Username: username, FullName: fullName, PasswordHash: hash}
	s.users[strings.ToLower(email)] = u
	s.users[strings.ToLower(username)] = u
	return nil
}

// Authenticate, email ya da kullanıcı adıyla gelen kimliği doğrular.
func (s *Store) Authenticate(identifier, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.users[strings.ToLower(identifier)]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens, kullanıcı için yeni bir erişim/yenileme jeton çifti üretir.
func (s *Store) IssueTokens(email string) (access, refresh string) {
	access = uuid.NewString()
	refresh = uuid.NewString()

	s.mu.Lock()
	s.access[access] = email
	s.refresh[refresh] = email
	s.mu.Unlock()
	return access, refresh
}

// ValidateAccess, erişim jetonunun sahibini döndürür.
func (s *Store) ValidateAccess(token string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.access[token]
	if !ok {
		return User{}, false
	}
	u, ok := s.users[strings.ToLower(email)]
	return u, ok
}

// Refresh, yenileme jetonunu harcayıp yeni bir çift üretir.
func (s *Store) Refresh(refreshToken string) (access, refresh string, ok bool) {
	s.mu.Lock()
	email, found := s.refresh[refreshToken]
	if !found {
		s.mu.Unlock()
		return "", "", false
	}
	delete(s.refresh, refreshToken)
	s.mu.Unlock()

	access, refresh = s.IssueTokens(email)
	return access, refresh, true
}

// RevokeRefresh, yenileme jetonunu geçersiz kılar.
func (s *Store) RevokeRefresh(refreshToken string) {
	s.mu.Lock()
	delete(s.refresh, refreshToken)
	s.mu.Unlock()
}

// RevokeAccess, erişim jetonunu düşürür (çıkış).
func (s *Store) RevokeAccess(accessToken string) {
	s.mu.Lock()
	delete(s.access, accessToken)
	s.mu.Unlock()
}

// ListPage, kişi listesinin 1 tabanlı bir sayfasını sayfalama üst verisiyle
// döndürür. Aralık dışı sayfalar gerçek arka uç gibi boş liste döndürür;
// sayıyı yorumlamak istemcinin işidir.
func (s *Store) ListPage(index, size int) (items []Person, count, pages int) {
	if index < 1 {
		index = 1
	}
	if size < 1 {
		size = 25
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count = len(s.people)
	pages = (count + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	start := (index - 1) * size
	if start >= count {
		return []Person{}, count, pages
	}
	end := start + size
	if end > count {
		end = count
	}

	items = make([]Person, end-start)
	copy(items, s.people[start:end])
	return items, count, pages
}

// Sympathizers, path işareti boş olan kişileri döndürür.
func (s *Store) Sympathizers() []Person {
	return s.byPath(false)
}

// OrganizationMembers, path işareti dolu olan kişileri döndürür.
func (s *Store) OrganizationMembers() []Person {
	return s.byPath(true)
}

func (s *Store) byPath(organization bool) []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Person, 0, len(s.people))
	for _, p := range s.people {
		if (p.Path != "") == organization {
			out = append(out, p)
		}
	}
	return out
}

// Person, kişiyi kimliğiyle bulur.
func (s *Store) Person(id string) (Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// UpdatePerson, kişinin güncellenebilir alanlarını değiştirir ve yeni halini
// döndürür.
func (s *Store) UpdatePerson(id string, upd PersonUpdate) (Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.people {
		if s.people[i].ID != id {
			continue
		}
		p := &s.people[i]
		p.FullName = upd.FullName
		p.FirstName = ""
		p.LastName = ""
		p.PhoneNumber = upd.PhoneNumber
		p.Path = upd.Path
		p.BirthDate = upd.BirthDate
		p.Address = upd.Address
		p.District = upd.District
		p.Notes = upd.Notes
		s.log.Info("kişi güncellendi", "person_id", id)
		return *p, nil
	}
	return Person{}, ErrPersonNotFound
}
