// cmd/btp/cmd/appctx/appctx.go
package appctx

import (
	"context"
	"errors"

	"github.com/AhmetHKarabulut/btp-app/internal/app/client"
)

type key struct{}

// ErrNotInitialized - komut, kök komutun kurduğu uygulama olmadan çağrıldı
var ErrNotInitialized = errors.New("uygulama başlatılmamış")

// With, uygulamayı komut bağlamına koyar.
func With(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, key{}, app)
}

// From, kök komutun bağlama koyduğu uygulamayı çıkarır.
func From(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(key{}).(*client.App)
	if !ok || app == nil {
		return nil, ErrNotInitialized
	}
	return app, nil
}
