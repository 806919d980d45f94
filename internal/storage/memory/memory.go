package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kTowkA/dogfinder/internal/storage"
)

type entry struct {
	session  *storage.UserSession
	lastSeen time.Time
}

// Storage сессии пользователей в памяти. на диск ничего не сохраняется
type Storage struct {
	sessions map[uuid.UUID]*entry
	sync.Mutex
	factory storage.Factory
	now     func() time.Time
	closed  bool
}

func NewStorage(factory storage.Factory) *Storage {
	return &Storage{
		sessions: make(map[uuid.UUID]*entry),
		Mutex:    sync.Mutex{},
		factory:  factory,
		now:      time.Now,
	}
}

func (s *Storage) Session(ctx context.Context, userID uuid.UUID) (*storage.UserSession, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	e, ok := s.sessions[userID]
	if !ok {
		e = &entry{session: s.factory(userID)}
		s.sessions[userID] = e
	}
	e.lastSeen = s.now()
	return e.session, nil
}

func (s *Storage) Drop(ctx context.Context, userID uuid.UUID) error {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	if _, ok := s.sessions[userID]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(s.sessions, userID)
	return nil
}

func (s *Storage) Expire(ctx context.Context, before time.Time) (int, error) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	count := 0
	for id, e := range s.sessions {
		// сессию с идущим подбором не трогаем
		if e.lastSeen.Before(before) && !e.session.Matcher.InProgress() {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Len количество сессий
func (s *Storage) Len() int {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	return len(s.sessions)
}

func (s *Storage) Ping(ctx context.Context) error {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	return nil
}

func (s *Storage) Close() error {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	s.closed = true
	s.sessions = make(map[uuid.UUID]*entry)
	return nil
}
