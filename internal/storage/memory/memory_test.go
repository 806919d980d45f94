package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kTowkA/dogfinder/internal/catalog/mocks"
	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/match"
	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/kTowkA/dogfinder/internal/search"
	"github.com/kTowkA/dogfinder/internal/storage"
	"github.com/stretchr/testify/suite"
)

type memorySuite struct {
	suite.Suite
	*Storage
	created int
	clock   time.Time
}

func (suite *memorySuite) SetupTest() {
	gw := new(mocks.Gateway)
	suite.created = 0
	suite.clock = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.Storage = NewStorage(func(userID uuid.UUID) *storage.UserSession {
		suite.created++
		return &storage.UserSession{
			Search:    search.NewSession(gw, model.DefaultCriteria(0), nil),
			Favorites: favorites.NewLedger(),
			Matcher:   match.NewOrchestrator(gw, nil),
		}
	})
	suite.Storage.now = func() time.Time { return suite.clock }
}

func (suite *memorySuite) TestSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user1 := uuid.New()
	user2 := uuid.New()

	s1, err := suite.Session(ctx, user1)
	suite.Require().NoError(err)
	s1again, err := suite.Session(ctx, user1)
	suite.Require().NoError(err)
	suite.Same(s1, s1again)

	s2, err := suite.Session(ctx, user2)
	suite.Require().NoError(err)
	suite.NotSame(s1, s2)
	suite.Equal(2, suite.created)

	// избранное разных пользователей независимо
	_, err = s1.Favorites.Add(model.Dog{ID: "1"})
	suite.Require().NoError(err)
	suite.False(s2.Favorites.IsFavorite("1"))
}

func (suite *memorySuite) TestDrop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := uuid.New()
	suite.ErrorIs(suite.Drop(ctx, user), storage.ErrSessionNotFound)

	_, err := suite.Session(ctx, user)
	suite.Require().NoError(err)
	suite.NoError(suite.Drop(ctx, user))
	suite.Equal(0, suite.Len())
}

func (suite *memorySuite) TestExpire() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	old := uuid.New()
	fresh := uuid.New()

	_, err := suite.Session(ctx, old)
	suite.Require().NoError(err)
	suite.clock = suite.clock.Add(time.Hour)
	_, err = suite.Session(ctx, fresh)
	suite.Require().NoError(err)

	n, err := suite.Expire(ctx, suite.clock.Add(-time.Minute))
	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.Equal(1, suite.Len())

	// после удаления создается новая сессия
	_, err = suite.Session(ctx, old)
	suite.Require().NoError(err)
	suite.Equal(3, suite.created)
}

func (suite *memorySuite) TestClose() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	suite.NoError(suite.Ping(ctx))
	suite.NoError(suite.Close())
	suite.ErrorIs(suite.Ping(ctx), storage.ErrClosed)
	_, err := suite.Session(ctx, uuid.New())
	suite.ErrorIs(err, storage.ErrClosed)
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(memorySuite))
}
