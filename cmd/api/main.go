package main

import (
	"github.com/gin-gonic/gin"

	"github.com/glamsuite/salon-scheduler/internal/cache"
	"github.com/glamsuite/salon-scheduler/internal/config"
	dbpkg "github.com/glamsuite/salon-scheduler/internal/db"
	"github.com/glamsuite/salon-scheduler/internal/logging"
	"github.com/glamsuite/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	r := gin.Default()
	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
