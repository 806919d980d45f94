package app

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/kTowkA/dogfinder/internal/config"
	"github.com/kTowkA/dogfinder/internal/storage/memory"
)

func Example() {
	cfg := config.DefaultConfig

	// клиент каталога собак
	gw, err := catalog.NewClient(cfg.CatalogURL(), cfg.RequestTimeout(), slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	// создаем экземпляр сервера
	server, err := NewServer(cfg, gw, slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	// сессии пользователей храним в памяти
	st := memory.NewStorage(server.NewSession)
	defer st.Close()

	// установим контекст отмены в несколько секунд
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// запускаем сервер с заданным контексом отмены и хранилищем
	if err = server.Run(ctx, st); err != nil {
		log.Fatal(err)
	}
}
