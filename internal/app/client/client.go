package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/client/config"
	"github.com/AhmetHKarabulut/btp-app/internal/domain/member"
	"github.com/AhmetHKarabulut/btp-app/internal/domain/searchlog"
)

// App, istemcinin tüm parçalarını bir araya getirir: oturum, istek katmanı,
// sayfa sürücüsü ve yerel arama günlüğü. Komut katmanı yalnızca bu nesneyle
// konuşur.
type App struct {
	config  *config.Config
	log     *slog.Logger
	session *Session
	api     *httpClient
	pager   *MemberPager

	searchLog *searchlog.Service
	logRepo   searchlog.Repository
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store := NewTieredTokenStore(NewFileTokenStore(cfg.TokenPath), log)
	session := NewSession(store, log)
	api := NewHTTPClient(cfg, session, log)

	// Arama günlüğü: SQLite açılamazsa bellekte devam edilir, uygulama
	// bu yüzden açılmamazlık etmez
	var repo searchlog.Repository
	sqliteRepo, err := NewSQLiteSearchLog(cfg.DataPath)
	if err != nil {
		log.Warn("arama günlüğü veritabanı açılamadı, bellek kullanılacak", "path", cfg.DataPath, "error", err)
		repo = NewMemorySearchLog()
	} else {
		repo = sqliteRepo
	}

	app := &App{
		config:    cfg,
		log:       log,
		session:   session,
		api:       api,
		pager:     NewMemberPager(api, cfg.PageSize, log),
		searchLog: searchlog.NewService(repo, log),
		logRepo:   repo,
	}

	return app, nil
}

// Close, yerel kaynakları serbest bırakır.
func (a *App) Close() error {
	if closer, ok := a.logRepo.(*SQLiteSearchLog); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("arama günlüğü kapatma: %w", err)
		}
	}
	return nil
}

// IsAuthenticated, elde bir oturum jetonu olup olmadığını söyler. Jetonun
// hâlâ geçerli olup olmadığına sunucu karar verir.
func (a *App) IsAuthenticated() bool {
	return a.session.Authenticated()
}

// Login, kullanıcıyı doğrular ve oturumu saklar.
func (a *App) Login(ctx context.Context, identifier, password string) (UserInfo, error) {
	return a.api.Login(ctx, identifier, password)
}

// Logout, sunucuya çıkış bildirir ve yerel oturumu her durumda temizler.
func (a *App) Logout(ctx context.Context) {
	a.api.Logout(ctx)
}

// RefreshSession, yenileme jetonuyla oturumu tazeler.
func (a *App) RefreshSession(ctx context.Context) error {
	return a.api.RefreshSession(ctx)
}

// RevokeToken, yenileme jetonunu sunucuda geçersiz kılar.
func (a *App) RevokeToken(ctx context.Context) error {
	return a.api.RevokeToken(ctx)
}

// Members, sunucu güdümlü üye listesi sürücüsünü döndürür.
func (a *App) Members() *MemberPager {
	return a.pager
}

// Sympathizers, sempatizan listesinin tamamını getirir.
func (a *App) Sympathizers(ctx context.Context) ([]member.Member, Source, error) {
	return a.api.Sympathizers(ctx)
}

// OrganizationMembers, teşkilat listesinin tamamını getirir.
func (a *App) OrganizationMembers(ctx context.Context) ([]member.Member, Source, error) {
	return a.api.OrganizationMembers(ctx)
}

// Person, tek kişinin detayını getirir.
func (a *App) Person(ctx context.Context, id string) (member.Member, Source, error) {
	return a.api.Person(ctx, id)
}

// UpdatePerson, kişi kaydını çok rotalı geri düşüşle günceller.
func (a *App) UpdatePerson(ctx context.Context, id string, payload PersonUpdate) (member.Member, error) {
	return a.api.UpdatePerson(ctx, id, payload)
}

// SearchLog, yerel arama günlüğü servisini döndürür.
func (a *App) SearchLog() searchlog.Servicer {
	return a.searchLog
}

// NewestReleaseNotes, sürüm notlarını getirir.
func (a *App) NewestReleaseNotes(ctx context.Context, count int) ([]ReleaseNote, error) {
	return a.api.NewestReleaseNotes(ctx, count)
}
