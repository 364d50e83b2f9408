//POST /api/Auth/Login                            # Giriş (herkese açık)
//POST /api/Auth/Logout                           # Çıkış (auth)
//GET  /api/Auth/RefreshToken                     # Jeton yenileme (herkese açık, X-Refresh-Token)
//PUT  /api/Auth/RevokeToken                      # Yenileme jetonu iptali (herkese açık)
//GET  /api/Members/GetList                       # Sayfalı üye listesi (auth)
//GET  /api/Party/Sympathizers                    # Sempatizanlar (auth)
//GET  /api/Party/Members                         # Teşkilat üyeleri (auth)
//GET  /api/Party/Person/{id}                     # Kişi detayı (auth)
//POST /api/Party/Person/Update                   # Kişi güncelleme (auth)
//GET  /api/ReleaseNotes/GetNewestReleaseNotes    # Sürüm notları (herkese açık)
//GET  /api/Health                                # Sağlık denetimi (herkese açık)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/authapi"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/health"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/middleware"
	authMW "github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/middleware/auth"
	loggerMW "github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/middleware/logger"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/notesapi"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/partyapi"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
)

type Handlers struct {
	Health *health.Handler
	Auth   *authapi.Handler
	Party  *partyapi.Handler
	Notes  *notesapi.Handler
}

// New, tüm uçları huma.Register üzerinden bağlayan *chi.Mux oluşturur.
func New(st *store.Store, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("BTP Party API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(st, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Party.SetupRoutes(API)
	h.Notes.SetupRoutes(API)

	return mux
}

func handlers(st *store.Store, log *slog.Logger) *Handlers {
	auth := authMW.New(st, log)
	logger := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logger.Middleware())
	healthHandler := health.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logger.Middleware())
	public := middlewares.GetAllAndClear()

	middlewares.Add(auth.Middleware())
	middlewares.Add(logger.Middleware())
	protected := middlewares.GetAllAndClear()

	authHandler := authapi.NewHandler(st, log, public, protected)

	middlewares.Add(auth.Middleware())
	middlewares.Add(logger.Middleware())
	partyHandler := partyapi.NewHandler(st, log, middlewares.GetAllAndClear())

	middlewares.Add(logger.Middleware())
	notesHandler := notesapi.NewHandler(log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Auth:   authHandler,
		Party:  partyHandler,
		Notes:  notesHandler,
	}
}
