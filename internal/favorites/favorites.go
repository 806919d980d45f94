// пакет favorites список избранных собак пользователя на время сессии.
// список хранит копии записей, поэтому собака остается в избранном, даже если ушла с текущей страницы поиска
package favorites

import (
	"errors"
	"slices"
	"sync"

	"github.com/kTowkA/dogfinder/internal/model"
)

var (
	// ErrLedgerHeld список заблокирован на время запроса подбора
	ErrLedgerHeld = errors.New("избранное заблокировано до завершения подбора")
)

// Ledger упорядоченный список избранного без повторов идентификаторов
type Ledger struct {
	mu    sync.RWMutex
	dogs  []model.Dog
	index map[string]int
	held  bool
}

func NewLedger() *Ledger {
	return &Ledger{
		dogs:  make([]model.Dog, 0),
		index: make(map[string]int),
	}
}

// Add добавляет dog в конец списка. если такой идентификатор уже есть, ничего не делает и возвращает false
func (l *Ledger) Add(dog model.Dog) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, ErrLedgerHeld
	}
	if _, ok := l.index[dog.ID]; ok {
		return false, nil
	}
	l.index[dog.ID] = len(l.dogs)
	l.dogs = append(l.dogs, dog)
	return true, nil
}

// Remove удаляет запись с идентификатором id. отсутствие записи ошибкой не считается
func (l *Ledger) Remove(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, ErrLedgerHeld
	}
	pos, ok := l.index[id]
	if !ok {
		return false, nil
	}
	l.dogs = slices.Delete(l.dogs, pos, pos+1)
	delete(l.index, id)
	for i := pos; i < len(l.dogs); i++ {
		l.index[l.dogs[i].ID] = i
	}
	return true, nil
}

// Clear очищает список
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return ErrLedgerHeld
	}
	l.dogs = make([]model.Dog, 0)
	l.index = make(map[string]int)
	return nil
}

func (l *Ledger) IsFavorite(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[id]
	return ok
}

// Get запись с идентификатором id
func (l *Ledger) Get(id string) (model.Dog, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	pos, ok := l.index[id]
	if !ok {
		return model.Dog{}, false
	}
	return l.dogs[pos], true
}

// List копия списка в порядке добавления
func (l *Ledger) List() []model.Dog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.dogs)
}

// IDs идентификаторы в порядке добавления
func (l *Ledger) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, len(l.dogs))
	for i := range l.dogs {
		ids[i] = l.dogs[i].ID
	}
	return ids
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.dogs)
}

// Held заблокирован ли список
func (l *Ledger) Held() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.held
}

// Hold блокирует изменения списка до вызова release. повторная блокировка возвращает ErrLedgerHeld
func (l *Ledger) Hold() (release func(), err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil, ErrLedgerHeld
	}
	l.held = true
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.held = false
			l.mu.Unlock()
		})
	}, nil
}
