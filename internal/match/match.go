// пакет match подбор собаки по списку избранного
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/model"
)

var (
	// ErrEmptyLedger подбор по пустому избранному не выполняется
	ErrEmptyLedger = errors.New("избранное пусто")
	// ErrInProgress подбор уже выполняется
	ErrInProgress = errors.New("подбор уже выполняется")
	// ErrResolution каталог вернул идентификатор, которого нет в избранном
	ErrResolution = errors.New("подобранная собака не найдена в избранном")
)

// ResolutionError каталог нарушил контракт и вернул идентификатор ID не из переданного списка
type ResolutionError struct {
	ID string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s. идентификатор %q", ErrResolution.Error(), e.ID)
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// Matcher часть каталога, нужная для подбора
type Matcher interface {
	MatchFavorites(ctx context.Context, ids []string) (string, error)
}

// Orchestrator выполняет не более одного подбора одновременно
type Orchestrator struct {
	gw       Matcher
	logger   *slog.Logger
	inFlight atomic.Bool
}

func NewOrchestrator(gw Matcher, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		gw:     gw,
		logger: log,
	}
}

// InProgress выполняется ли сейчас подбор
func (o *Orchestrator) InProgress() bool {
	return o.inFlight.Load()
}

// RequestMatch отправляет идентификаторы избранного в каталог и возвращает подобранную запись из ledger.
// на время запроса изменения ledger запрещены. ledger не очищается
func (o *Orchestrator) RequestMatch(ctx context.Context, ledger *favorites.Ledger) (model.Dog, error) {
	if ledger.Len() == 0 {
		return model.Dog{}, ErrEmptyLedger
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return model.Dog{}, ErrInProgress
	}
	defer o.inFlight.Store(false)

	release, err := ledger.Hold()
	if err != nil {
		return model.Dog{}, fmt.Errorf("подбор. %w", err)
	}
	defer release()

	ids := ledger.IDs()
	// между проверкой и блокировкой избранное могли очистить
	if len(ids) == 0 {
		return model.Dog{}, ErrEmptyLedger
	}
	id, err := o.gw.MatchFavorites(ctx, ids)
	if err != nil {
		return model.Dog{}, fmt.Errorf("подбор из %d избранных. %w", len(ids), err)
	}

	dog, ok := ledger.Get(id)
	if !ok {
		o.logger.Error(
			"каталог вернул идентификатор не из избранного",
			slog.String("id", id),
			slog.Int("избранных", len(ids)),
		)
		return model.Dog{}, &ResolutionError{ID: id}
	}
	return dog, nil
}
