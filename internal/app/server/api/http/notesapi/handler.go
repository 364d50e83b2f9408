package notesapi

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.newestOp(), h.newest)
}

// Sürüm notları sabittir; yayın süreciyle birlikte elle güncellenir.
var releaseNotes = []ReleaseNote{
	{
		ID:    "rn-003",
		Title: "Arama kayıtları",
		Body:  "Üye aramaları artık cihazda saklanıyor ve listelenebiliyor.",
		Date:  "2026-08-15",
	},
	{
		ID:    "rn-002",
		Title: "Çevrimdışı kip",
		Body:  "Sunucuya ulaşılamadığında tanıtım verisiyle çalışma eklendi.",
		Date:  "2026-07-01",
	},
	{
		ID:    "rn-001",
		Title: "İlk sürüm",
		Body:  "Üye listesi, filtreleme ve sıralama ile yayında.",
		Date:  "2026-06-10",
	},
}

func (h *Handler) newest(_ context.Context, input *newestInput) (*newestOutput, error) {
	count := input.Count
	if count <= 0 || count > len(releaseNotes) {
		count = len(releaseNotes)
	}
	return &newestOutput{Body: releaseNotes[:count]}, nil
}
