package main

import (
	"github.com/lesrhabilleurs/atelier-backend/internal/app"
	"github.com/lesrhabilleurs/atelier-backend/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "prod" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address))

	application.MustRun()
}
