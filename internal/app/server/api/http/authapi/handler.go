package authapi

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	mwauth "github.com/AhmetHKarabulut/btp-app/internal/app/server/api/http/middleware/auth"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, middleware, protected huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		log:        log,
		middleware: middleware,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.refreshOp(), h.refresh)
	huma.Register(api, h.revokeOp(), h.revoke)
}

func (h *Handler) login(_ context.Context, input *loginInput) (*loginOutput, error) {
	identifier := input.Body.Email
	if identifier == "" {
		identifier = input.Body.Username
	}

	u, err := h.store.Authenticate(identifier, input.Body.Password)
	if err != nil {
		h.log.Debug("giriş reddedildi", slog.String("identifier", identifier))
		// Arka uçtaki iş kuralı hataları istemciye bu biçimde gider.
		return nil, huma.Error400BadRequest("BusinessException: Kullanıcı adı veya parola hatalı.")
	}

	access, refresh := h.store.IssueTokens(u.Email)

	return &loginOutput{
		Body: LoginResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			User: UserPayload{
				Email:    u.Email,
				Username: u.Username,
				FullName: u.FullName,
			},
		},
	}, nil
}

func (h *Handler) logout(_ context.Context, input *logoutInput) (*logoutOutput, error) {
	if token := mwauth.TokenFromHeader(input.Authorization); token != "" {
		h.store.RevokeAccess(token)
	}
	return &logoutOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) refresh(_ context.Context, input *refreshInput) (*loginOutput, error) {
	access, refresh, ok := h.store.Refresh(input.RefreshToken)
	if !ok {
		return nil, huma.Error401Unauthorized("BusinessException: Yenileme jetonu geçersiz.")
	}

	return &loginOutput{
		Body: LoginResponse{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

func (h *Handler) revoke(_ context.Context, input *revokeInput) (*logoutOutput, error) {
	h.store.RevokeRefresh(input.Body.Token)
	return &logoutOutput{Body: StatusResponse{Status: "Ok"}}, nil
}
