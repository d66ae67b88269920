package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/huffmantext/internal/config"
	"github.com/chronos-tachyon/huffmantext/internal/handler"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
	"github.com/chronos-tachyon/huffmantext/internal/repo"
	"github.com/chronos-tachyon/huffmantext/internal/router"
	"github.com/chronos-tachyon/huffmantext/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flag.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "PostgreSQL DSN; empty stores documents in memory")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug messages")
	flag.Parse()

	logg := logger.New(cfg.Debug)

	docRepo := repo.NewDocumentRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		docRepo = repo.NewDocumentRepoPostgres(pool)
		logg.Infof("storing documents in PostgreSQL")
	}

	codecSvc := service.NewCodecService(docRepo, logg)
	codecH := handler.NewCodecHandler(codecSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
