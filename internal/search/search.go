// пакет search сессия поиска: текущие критерии, курсор и страница результатов.
//
// страница получается в два этапа: поиск идентификаторов, затем получение записей по ним.
// каждый запрос страницы получает свой номер. опубликовать результат может только последний запрос,
// ответы на устаревшие запросы (после смены критериев или более нового запроса) отбрасываются
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/kTowkA/dogfinder/internal/model"
)

var (
	// ErrStalePage ответ пришел на устаревший запрос и был отброшен
	ErrStalePage = errors.New("запрос страницы устарел")
	// ErrInvalidPage номер страницы меньше 1
	ErrInvalidPage = errors.New("некорректный номер страницы")
)

// Searcher часть каталога, нужная для поиска
type Searcher interface {
	SearchIDs(ctx context.Context, query model.SearchQuery) (model.SearchIDs, error)
	Hydrate(ctx context.Context, ids []string) ([]model.Dog, error)
}

type Session struct {
	mu       sync.Mutex
	gw       Searcher
	logger   *slog.Logger
	criteria model.Criteria
	page     int
	current  *model.Page
	next     string
	prev     string
	token    uint64
	pending  *inflight
}

// inflight выполняющийся запрос страницы. повторные запросы той же страницы ждут его результата
type inflight struct {
	number int
	cancel context.CancelFunc
	done   chan struct{}
	page   model.Page
	err    error
}

// NewSession создает сессию поиска с начальными критериями criteria
func NewSession(gw Searcher, criteria model.Criteria, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		gw:       gw,
		logger:   log,
		criteria: criteria.Clone(),
		page:     1,
	}
}

// Criteria копия текущих критериев
func (s *Session) Criteria() model.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

// PageNumber номер текущей страницы (начиная с 1)
func (s *Session) PageNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Current текущая отображаемая страница. false если страница еще не получена
func (s *Session) Current() (model.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Page{}, false
	}
	return clonePage(*s.current), true
}

// PageCount количество страниц по данным последнего ответа каталога
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return s.current.Pages
}

// SetCriteria сливает patch с текущими критериями, сбрасывает курсор и номер страницы
// и отменяет запрос страницы, который еще выполняется. при ошибке проверки состояние не меняется
func (s *Session) SetCriteria(patch model.CriteriaPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.criteria.Apply(patch)
	if err := merged.Validate(); err != nil {
		return err
	}
	s.criteria = merged
	s.page = 1
	s.current = nil
	s.next, s.prev = "", ""
	s.supersede()
	return nil
}

// supersede делает все выполняющиеся запросы устаревшими. вызывается под блокировкой
func (s *Session) supersede() {
	s.token++
	if s.pending != nil {
		s.pending.cancel()
		s.pending = nil
	}
}

// FetchPage получение страницы number. если это текущая страница, то возвращается сохраненный результат.
// если та же страница уже запрашивается, то ждем ответа на тот запрос, а не отправляем новый
func (s *Session) FetchPage(ctx context.Context, number int) (model.Page, error) {
	if number < 1 {
		return model.Page{}, fmt.Errorf("%w. %d", ErrInvalidPage, number)
	}

	s.mu.Lock()
	if s.current != nil && s.current.Number == number {
		p := clonePage(*s.current)
		s.mu.Unlock()
		return p, nil
	}
	if p := s.pending; p != nil && p.number == number {
		s.mu.Unlock()
		return wait(ctx, p)
	}
	query := s.queryFor(number)
	s.supersede()
	token := s.token
	fetchCtx, cancel := context.WithCancel(ctx)
	p := &inflight{
		number: number,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.pending = p
	s.mu.Unlock()

	page, ids, err := s.fetch(fetchCtx, query, number)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(p.done)
	if token != s.token {
		s.logger.Debug(
			"ответ на устаревший запрос страницы отброшен",
			slog.Int("страница", number),
		)
		p.err = ErrStalePage
		return model.Page{}, p.err
	}
	s.pending = nil
	if err != nil {
		p.err = err
		return model.Page{}, err
	}
	s.current = &page
	s.page = number
	s.next, s.prev = ids.Next, ids.Prev
	p.page = page
	return clonePage(page), nil
}

// wait ожидание результата запроса p, который отправил другой вызов FetchPage
func wait(ctx context.Context, p *inflight) (model.Page, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return model.Page{}, ctx.Err()
	}
	if p.err != nil {
		return model.Page{}, p.err
	}
	return clonePage(p.page), nil
}

// queryFor запрос для страницы number. на соседние страницы переходим по курсору каталога,
// на остальные по смещению. вызывается под блокировкой
func (s *Session) queryFor(number int) model.SearchQuery {
	query := model.SearchQuery{Criteria: s.criteria.Clone()}
	switch {
	case s.current != nil && number == s.current.Number+1 && s.next != "":
		query.Cursor = s.next
	case s.current != nil && number == s.current.Number-1 && s.prev != "":
		query.Cursor = s.prev
	default:
		query.From = (number - 1) * query.Criteria.PageSize()
	}
	return query
}

// fetch поиск идентификаторов и получение записей по ним
func (s *Session) fetch(ctx context.Context, query model.SearchQuery, number int) (model.Page, model.SearchIDs, error) {
	size := query.Criteria.PageSize()
	ids, err := s.gw.SearchIDs(ctx, query)
	if err != nil {
		return model.Page{}, model.SearchIDs{}, fmt.Errorf("получение страницы %d. %w", number, err)
	}
	if len(ids.ResultIDs) == 0 {
		return model.Page{
			Number:  number,
			Size:    size,
			Records: []model.Dog{},
		}, ids, nil
	}
	// пока искали идентификаторы, запрос мог устареть
	if err = ctx.Err(); err != nil {
		return model.Page{}, model.SearchIDs{}, err
	}

	dogs, err := s.gw.Hydrate(ctx, ids.ResultIDs)
	if err != nil {
		return model.Page{}, model.SearchIDs{}, fmt.Errorf("получение страницы %d. %w", number, err)
	}
	records := order(ids.ResultIDs, dogs)
	if len(records) != len(ids.ResultIDs) {
		s.logger.Debug(
			"каталог вернул не все записи",
			slog.Int("запрошено", len(ids.ResultIDs)),
			slog.Int("получено", len(records)),
		)
	}
	return model.Page{
		Number:  number,
		Size:    size,
		Total:   ids.Total,
		Pages:   model.PageCount(ids.Total, size),
		Records: records,
	}, ids, nil
}

// order расставляет записи в порядке идентификаторов ids
func order(ids []string, dogs []model.Dog) []model.Dog {
	byID := make(map[string]model.Dog, len(dogs))
	for _, d := range dogs {
		byID[d.ID] = d
	}
	records := make([]model.Dog, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			records = append(records, d)
			delete(byID, id)
		}
	}
	return records
}

func clonePage(p model.Page) model.Page {
	p.Records = slices.Clone(p.Records)
	return p
}
