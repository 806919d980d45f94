package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/kTowkA/dogfinder/internal/config"
	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/match"
	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/kTowkA/dogfinder/internal/search"
	"github.com/kTowkA/dogfinder/internal/storage"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// shutdownTimeout сколько ждем завершения активных запросов при остановке
	shutdownTimeout = 5 * time.Second

	// minJanitorPeriod минимальный период очистки неактивных сессий
	minJanitorPeriod = time.Minute
)

type Server struct {
	db     storage.Storager
	gw     catalog.Gateway
	Config config.Config
	logger *slog.Logger
	auth   singleflight.Group
}

// NewServer создает сервер, работающий с каталогом gw
func NewServer(cfg config.Config, gw catalog.Gateway, log *slog.Logger) (*Server, error) {
	if gw == nil {
		return nil, errors.New("создание сервера. не передан каталог")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		gw:     gw,
		Config: cfg,
		logger: log,
	}, nil
}

// NewSession новая сессия пользователя userID. используется хранилищем как фабрика
func (s *Server) NewSession(userID uuid.UUID) *storage.UserSession {
	log := s.logger.With(slog.String("пользователь", userID.String()))
	return &storage.UserSession{
		Search:    search.NewSession(s.gw, model.DefaultCriteria(s.Config.PageSize()), log),
		Favorites: favorites.NewLedger(),
		Matcher:   match.NewOrchestrator(s.gw, log),
	}
}

// Router маршруты приложения
func (s *Server) Router() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.Recoverer)
	mux.Use(s.withLog)
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Use(withGzipBody)

	mux.Get("/ping", s.ping)
	mux.Route("/api", func(r chi.Router) {
		r.Use(s.withUser)

		r.Get("/breeds", s.breeds)
		r.Post("/locations", s.locations)
		r.Post("/locations/search", s.searchLocations)

		r.Route("/search", func(r chi.Router) {
			r.Get("/", s.searchState)
			r.Patch("/", s.setCriteria)
			r.Get("/pages/{page}", s.fetchPage)
		})
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.listFavorites)
			r.Delete("/", s.clearFavorites)
			r.Post("/{id}", s.addFavorite)
			r.Delete("/{id}", s.removeFavorite)
		})
		r.Route("/match", func(r chi.Router) {
			r.Post("/", s.requestMatch)
			r.Post("/ack", s.ackMatch)
		})
	})
	return mux
}

// Run авторизуется в каталоге и запускает сервер с хранилищем db до отмены ctx
func (s *Server) Run(ctx context.Context, db storage.Storager) error {
	s.db = db

	if err := s.login(ctx); err != nil {
		return fmt.Errorf("запуск сервера. %w", err)
	}

	srv := &http.Server{
		Addr:    s.Config.Address(),
		Handler: s.Router(),
	}

	gr, grCtx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		defer s.logger.Info("остановили сервер")
		<-grCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("остановка сервера", slog.String("ошибка", err.Error()))
		}
		if err := s.gw.Logout(shutdownCtx); err != nil {
			s.logger.Warn("выход из каталога", slog.String("ошибка", err.Error()))
		}
		return nil
	})
	gr.Go(func() error {
		s.janitor(grCtx)
		return nil
	})
	gr.Go(func() error {
		s.logger.Info("запуск сервера", slog.String("адрес", s.Config.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return gr.Wait()
}

// janitor периодически удаляет сессии, неактивные дольше SessionTTL
func (s *Server) janitor(ctx context.Context) {
	ttl := s.Config.SessionTTL()
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(max(ttl/4, minJanitorPeriod))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := s.db.Expire(ctx, now.Add(-ttl))
			if err != nil {
				s.logger.Error("удаление неактивных сессий", slog.String("ошибка", err.Error()))
				continue
			}
			if n > 0 {
				s.logger.Info("удалены неактивные сессии", slog.Int("количество", n))
			}
		}
	}
}

// login авторизация в каталоге. одновременные вызовы объединяются в один запрос
func (s *Server) login(ctx context.Context) error {
	timeout := s.Config.RequestTimeout()
	if timeout <= 0 {
		timeout = shutdownTimeout
	}
	_, err, _ := s.auth.Do("login", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		return nil, s.gw.Login(ctx, s.Config.CatalogUser(), s.Config.CatalogEmail())
	})
	if err != nil {
		return err
	}
	s.logger.Info("авторизовались в каталоге", slog.String("каталог", s.Config.CatalogURL()))
	return nil
}
