package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/match"
	"github.com/kTowkA/dogfinder/internal/search"
)

var (
	ErrSessionNotFound = errors.New("сессия не найдена")
	ErrClosed          = errors.New("хранилище закрыто")
)

// UserSession все состояние пользователя: поиск, избранное и подбор.
// компоненты не разделяют состояние, подбор только читает избранное
type UserSession struct {
	Search    *search.Session
	Favorites *favorites.Ledger
	Matcher   *match.Orchestrator
}

// Factory создает новую сессию для пользователя
type Factory func(userID uuid.UUID) *UserSession

type Storager interface {
	// Session сессия пользователя userID. если ее нет, то создается новая
	Session(ctx context.Context, userID uuid.UUID) (*UserSession, error)

	// Drop удаление сессии пользователя
	Drop(ctx context.Context, userID uuid.UUID) error

	// Expire удаление сессий, к которым не обращались с момента before. возвращает количество удаленных
	Expire(ctx context.Context, before time.Time) (int, error)

	// Ping проверка доступности хранилища
	Ping(ctx context.Context) error

	// Close закрытие хранилища
	Close() error
}
