package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/kTowkA/dogfinder/internal/search"
)

var (
	ErrDogNotFound = errors.New("собака не найдена в каталоге")
)

// Hydrator получение записей по идентификаторам
type Hydrator interface {
	Hydrate(ctx context.Context, ids []string) ([]model.Dog, error)
}

// ResolveDog ищет запись с идентификатором id сначала на текущей странице поиска session,
// и только если ее там нет запрашивает каталог
func ResolveDog(ctx context.Context, session *search.Session, gw Hydrator, id string) (model.Dog, error) {
	if page, ok := session.Current(); ok {
		for _, d := range page.Records {
			if d.ID == id {
				return d, nil
			}
		}
	}

	dogs, err := gw.Hydrate(ctx, []string{id})
	if err != nil {
		return model.Dog{}, fmt.Errorf("получение собаки %q. %w", id, err)
	}
	for _, d := range dogs {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Dog{}, fmt.Errorf("%w. %q", ErrDogNotFound, id)
}

// MarkedDog запись с отметкой избранного для отображения
type MarkedDog struct {
	model.Dog
	Favorite bool `json:"favorite"`
}

// MarkFavorites отмечает записи, которые есть в избранном. isFavorite вызывается для каждой записи
func MarkFavorites(dogs []model.Dog, isFavorite func(id string) bool) []MarkedDog {
	marked := make([]MarkedDog, len(dogs))
	for i := range dogs {
		marked[i] = MarkedDog{
			Dog:      dogs[i],
			Favorite: isFavorite(dogs[i].ID),
		}
	}
	return marked
}
