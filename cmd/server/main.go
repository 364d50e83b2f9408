package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"github.com/AhmetHKarabulut/btp-app/internal/app/server/api"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/config"
	"github.com/AhmetHKarabulut/btp-app/internal/app/server/store"
	"github.com/AhmetHKarabulut/btp-app/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	st := store.New(log)
	mux := api.New(st, log)

	log.Info("sunucu başlıyor",
		slog.String("address", conf.Server.RunAddress),
		slog.String("env", conf.Env),
	)

	if err := http.ListenAndServe(conf.Server.RunAddress, mux); err != nil {
		log.Error("sunucu durdu", "error", err)
		os.Exit(1)
	}
}
