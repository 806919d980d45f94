package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kTowkA/dogfinder/internal/catalog/mocks"
	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/kTowkA/dogfinder/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveDog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	onPage := model.Dog{ID: "1", Name: "Rex"}
	remote := model.Dog{ID: "7", Name: "Max"}

	gw := mocks.NewGateway(t)
	gw.On("SearchIDs", mock.Anything, mock.Anything).Return(model.SearchIDs{ResultIDs: []string{"1"}, Total: 1}, nil).Once()
	gw.On("Hydrate", mock.Anything, []string{"1"}).Return([]model.Dog{onPage}, nil).Once()
	gw.On("Hydrate", mock.Anything, []string{"7"}).Return([]model.Dog{remote}, nil).Once()
	gw.On("Hydrate", mock.Anything, []string{"404"}).Return([]model.Dog{}, nil).Once()
	gw.On("Hydrate", mock.Anything, []string{"500"}).Return(nil, errors.New("transport")).Once()

	session := search.NewSession(gw, model.DefaultCriteria(0), nil)
	_, err := session.FetchPage(ctx, 1)
	require.NoError(t, err)

	// с текущей страницы без обращения к каталогу
	dog, err := ResolveDog(ctx, session, gw, "1")
	require.NoError(t, err)
	assert.Equal(t, onPage, dog)
	gw.AssertNumberOfCalls(t, "Hydrate", 1)

	dog, err = ResolveDog(ctx, session, gw, "7")
	require.NoError(t, err)
	assert.Equal(t, remote, dog)

	_, err = ResolveDog(ctx, session, gw, "404")
	assert.ErrorIs(t, err, ErrDogNotFound)

	_, err = ResolveDog(ctx, session, gw, "500")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDogNotFound)
}

func TestMarkFavorites(t *testing.T) {
	dogs := []model.Dog{{ID: "1"}, {ID: "2"}}
	marked := MarkFavorites(dogs, func(id string) bool { return id == "2" })
	require.Len(t, marked, 2)
	assert.False(t, marked[0].Favorite)
	assert.True(t, marked[1].Favorite)
	assert.Equal(t, "2", marked[1].ID)
}
