package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
)

type Auth struct {
	store *store.Store
	log   *slog.Logger
}

func New(st *store.Store, log *slog.Logger) *Auth {
	return &Auth{
		store: st,
		log:   log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const userKey contextKey = "user"

// Middleware, Bearer jetonunu doğrular ve kullanıcıyı istek bağlamına koyar.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if len(header) < 7 || header[:7] != "Bearer " {
			a.log.Debug("bearer başlığı eksik veya bozuk")
			writeUnauthorized(ctx)
			return
		}

		user, ok := a.store.ValidateAccess(header[7:])
		if !ok {
			a.log.Debug("geçersiz erişim jetonu")
			writeUnauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), userKey, user)
		next(huma.WithContext(ctx, newCtx))
	}
}

func writeUnauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

// UserFromContext, mid katmanının koyduğu kullanıcıyı döndürür.
func UserFromContext(ctx context.Context) (store.User, bool) {
	user, ok := ctx.Value(userKey).(store.User)
	return user, ok
}

// TokenFromHeader, Authorization başlığındaki ham jetonu ayıklar; çıkış
// ucunun jetonu düşürebilmesi için.
func TokenFromHeader(header string) string {
	if len(header) >= 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}
