package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/kTowkA/dogfinder/internal/catalog/mocks"
	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ledgerWith(t *testing.T, dogs ...model.Dog) *favorites.Ledger {
	l := favorites.NewLedger()
	for _, d := range dogs {
		_, err := l.Add(d)
		require.NoError(t, err)
	}
	return l
}

var (
	dogA = model.Dog{ID: "1", Name: "A", Breed: "Akita"}
	dogB = model.Dog{ID: "2", Name: "B", Breed: "Beagle"}
)

func TestRequestMatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gw := mocks.NewGateway(t)
	gw.On("MatchFavorites", mock.Anything, []string{"1", "2"}).Return("2", nil).Once()

	ledger := ledgerWith(t, dogA, dogB)
	o := NewOrchestrator(gw, nil)

	dog, err := o.RequestMatch(ctx, ledger)
	require.NoError(t, err)
	assert.Equal(t, dogB, dog)
	// избранное не очищается и не заблокировано после подбора
	assert.Equal(t, 2, ledger.Len())
	assert.False(t, ledger.Held())
	assert.False(t, o.InProgress())
	gw.AssertNotCalled(t, "Hydrate", mock.Anything, mock.Anything)
}

func TestRequestMatchResolution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gw := mocks.NewGateway(t)
	gw.On("MatchFavorites", mock.Anything, []string{"1", "2"}).Return("99", nil).Once()

	ledger := ledgerWith(t, dogA, dogB)
	before := ledger.List()

	_, err := NewOrchestrator(gw, nil).RequestMatch(ctx, ledger)
	require.ErrorIs(t, err, ErrResolution)
	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "99", re.ID)
	assert.Equal(t, before, ledger.List())
	assert.False(t, ledger.Held())
}

func TestRequestMatchEmpty(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gw := mocks.NewGateway(t)
	_, err := NewOrchestrator(gw, nil).RequestMatch(ctx, favorites.NewLedger())
	require.ErrorIs(t, err, ErrEmptyLedger)
	gw.AssertNotCalled(t, "MatchFavorites", mock.Anything, mock.Anything)
}

func TestRequestMatchErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gw := mocks.NewGateway(t)
	gw.On("MatchFavorites", mock.Anything, []string{"1"}).Return("", catalog.ErrNoMatch).Once()
	gw.On("MatchFavorites", mock.Anything, []string{"1"}).Return("", &catalog.TransportError{Status: 500, Message: "oops"}).Once()

	ledger := ledgerWith(t, dogA)
	o := NewOrchestrator(gw, nil)

	_, err := o.RequestMatch(ctx, ledger)
	require.ErrorIs(t, err, catalog.ErrNoMatch)

	_, err = o.RequestMatch(ctx, ledger)
	var te *catalog.TransportError
	require.ErrorAs(t, err, &te)
	assert.NotErrorIs(t, err, catalog.ErrNoMatch)
	assert.Equal(t, 1, ledger.Len())
}

func TestRequestMatchExclusive(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	gw := mocks.NewGateway(t)
	gw.On("MatchFavorites", mock.Anything, []string{"1", "2"}).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return("1", nil).Once()

	ledger := ledgerWith(t, dogA, dogB)
	o := NewOrchestrator(gw, nil)

	wg := sync.WaitGroup{}
	wg.Add(1)
	var (
		first    model.Dog
		firstErr error
	)
	go func() {
		defer wg.Done()
		first, firstErr = o.RequestMatch(ctx, ledger)
	}()
	<-started

	assert.True(t, o.InProgress())
	_, err := o.RequestMatch(ctx, ledger)
	assert.ErrorIs(t, err, ErrInProgress)

	// пока идет подбор, избранное менять нельзя
	_, err = ledger.Remove("1")
	assert.ErrorIs(t, err, favorites.ErrLedgerHeld)
	assert.ErrorIs(t, ledger.Clear(), favorites.ErrLedgerHeld)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, dogA, first)

	require.NoError(t, ledger.Clear())
}
