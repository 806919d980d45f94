package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kTowkA/dogfinder/internal/app"
	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/kTowkA/dogfinder/internal/catalog/cache"
	"github.com/kTowkA/dogfinder/internal/config"
	"github.com/kTowkA/dogfinder/internal/logger"
	"github.com/kTowkA/dogfinder/internal/storage/memory"
)

func main() {
	cfg, err := config.ParseConfig(slog.Default(), os.Args[1:]...)
	if err != nil {
		log.Fatal(err)
	}

	l, err := logger.NewLogger(logger.LevelFromString(cfg.LogLevel()))
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	client, err := catalog.NewClient(cfg.CatalogURL(), cfg.RequestTimeout(), l.Logger)
	if err != nil {
		l.Error("создание клиента каталога", slog.String("ошибка", err.Error()))
		return
	}

	var gw catalog.Gateway = client
	// список пород кешируем в redis, если он указан
	if cfg.RedisAddr() != "" {
		rdb, err := cache.NewRedis(ctx, cfg.RedisAddr())
		if err != nil {
			l.Warn("redis недоступен, работаем без кеша пород", slog.String("ошибка", err.Error()))
		} else {
			defer rdb.Close()
			gw = cache.Wrap(client, rdb, cfg.BreedsTTL(), l.Logger)
		}
	}

	server, err := app.NewServer(cfg, gw, l.Logger)
	if err != nil {
		l.Error("создание сервера", slog.String("ошибка", err.Error()))
		return
	}

	st := memory.NewStorage(server.NewSession)
	defer st.Close()

	if err = server.Run(ctx, st); err != nil {
		l.Error("работа сервера", slog.String("ошибка", err.Error()))
	}
}
