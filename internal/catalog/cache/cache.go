// пакет cache кеширование списка пород каталога в redis.
// кешируется только перечень пород, записи о собаках всегда запрашиваются у каталога
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/redis/go-redis/v9"
)

const (
	breedsKey = "dogfinder:breeds"

	// DefaultTTL время жизни списка пород по умолчанию
	DefaultTTL = time.Hour
)

// Gateway каталог с кешированием списка пород. остальные методы передаются каталогу без изменений
type Gateway struct {
	catalog.Gateway
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis создает клиента redis и проверяет соединение
func NewRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("подключение к redis %s. %w", addr, err)
	}
	return rdb, nil
}

// Wrap оборачивает каталог next кешем в rdb
func Wrap(next catalog.Gateway, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *Gateway {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		Gateway: next,
		rdb:     rdb,
		ttl:     ttl,
		logger:  log,
	}
}

// ListBreeds список пород из кеша. при промахе или недоступности redis запрашивается каталог
func (g *Gateway) ListBreeds(ctx context.Context) ([]string, error) {
	data, err := g.rdb.Get(ctx, breedsKey).Bytes()
	switch {
	case err == nil:
		breeds := []string{}
		if err = json.Unmarshal(data, &breeds); err == nil {
			return breeds, nil
		}
		g.logger.Warn("раскодирование списка пород из кеша", slog.String("ошибка", err.Error()))
	case errors.Is(err, redis.Nil):
	default:
		g.logger.Warn("чтение списка пород из кеша", slog.String("ошибка", err.Error()))
	}

	breeds, err := g.Gateway.ListBreeds(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(breeds)
	if err != nil {
		g.logger.Warn("кодирование списка пород", slog.String("ошибка", err.Error()))
		return breeds, nil
	}
	if err = g.rdb.Set(ctx, breedsKey, data, g.ttl).Err(); err != nil {
		g.logger.Warn("сохранение списка пород в кеш", slog.String("ошибка", err.Error()))
	}
	return breeds, nil
}

// Invalidate удаляет список пород из кеша
func (g *Gateway) Invalidate(ctx context.Context) error {
	if err := g.rdb.Del(ctx, breedsKey).Err(); err != nil {
		return fmt.Errorf("удаление списка пород из кеша. %w", err)
	}
	return nil
}
