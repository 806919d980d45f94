package app

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kTowkA/dogfinder/internal/catalog"
	"github.com/kTowkA/dogfinder/internal/favorites"
	"github.com/kTowkA/dogfinder/internal/match"
	"github.com/kTowkA/dogfinder/internal/model"
	"github.com/kTowkA/dogfinder/internal/search"
	"github.com/kTowkA/dogfinder/internal/storage"
	"github.com/kTowkA/dogfinder/internal/utils"
)

// searchState ответ на запрос состояния поиска
type searchState struct {
	Criteria model.Criteria `json:"criteria"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
}

// pageResponse страница результатов с отметками избранного
type pageResponse struct {
	Number  int               `json:"page"`
	Size    int               `json:"size"`
	Total   int               `json:"total"`
	Pages   int               `json:"pages"`
	Records []utils.MarkedDog `json:"records"`
}

// ping проверка доступности хранилища
func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		http.Error(w, "хранилище не подключено", http.StatusInternalServerError)
		return
	}
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.Error("проверка хранилища", slog.String("ошибка", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) breeds(w http.ResponseWriter, r *http.Request) {
	breeds, err := s.gw.ListBreeds(r.Context())
	if err != nil {
		s.upstreamError(w, r, "список пород", err)
		return
	}
	s.writeJSON(w, http.StatusOK, breeds)
}

// locations описание почтовых индексов. тело запроса - массив индексов
func (s *Server) locations(w http.ResponseWriter, r *http.Request) {
	var zips []string
	if err := json.NewDecoder(r.Body).Decode(&zips); err != nil {
		http.Error(w, "ожидается массив почтовых индексов", http.StatusBadRequest)
		return
	}
	if len(zips) == 0 {
		http.Error(w, "пустой список почтовых индексов", http.StatusBadRequest)
		return
	}
	locations, err := s.gw.Locations(r.Context(), zips)
	if err != nil {
		s.upstreamError(w, r, "описание почтовых индексов", err)
		return
	}
	s.writeJSON(w, http.StatusOK, locations)
}

// searchLocations поиск почтовых индексов. найденные индексы клиент может передать в критерии поиска собак
func (s *Server) searchLocations(w http.ResponseWriter, r *http.Request) {
	var query model.LocationSearch
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		http.Error(w, "некорректный формат запроса", http.StatusBadRequest)
		return
	}
	if err := query.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := s.gw.SearchLocations(r.Context(), query)
	if err != nil {
		s.upstreamError(w, r, "поиск почтовых индексов", err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) searchState(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, searchState{
		Criteria: us.Search.Criteria(),
		Page:     us.Search.PageNumber(),
		Pages:    us.Search.PageCount(),
	})
}

// setCriteria изменение критериев поиска. поля, которых нет в запросе, не меняются
func (s *Server) setCriteria(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}

	var patch model.CriteriaPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "некорректный формат критериев", http.StatusBadRequest)
		return
	}
	if err := us.Search.SetCriteria(patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, searchState{
		Criteria: us.Search.Criteria(),
		Page:     us.Search.PageNumber(),
		Pages:    us.Search.PageCount(),
	})
}

func (s *Server) fetchPage(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}

	number, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "номер страницы должен быть числом", http.StatusBadRequest)
		return
	}

	page, err := us.Search.FetchPage(r.Context(), number)
	switch {
	case err == nil:
	case errors.Is(err, search.ErrInvalidPage), errors.Is(err, model.ErrInvalidCriteria):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, search.ErrStalePage):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	default:
		s.upstreamError(w, r, "получение страницы", err)
		return
	}

	s.writeJSON(w, http.StatusOK, pageResponse{
		Number:  page.Number,
		Size:    page.Size,
		Total:   page.Total,
		Pages:   page.Pages,
		Records: utils.MarkFavorites(page.Records, us.Favorites.IsFavorite),
	})
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, us.Favorites.List())
}

// addFavorite добавление в избранное. запись берется с текущей страницы или запрашивается в каталоге
func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if us.Favorites.IsFavorite(id) {
		dog, _ := us.Favorites.Get(id)
		s.writeJSON(w, http.StatusOK, dog)
		return
	}

	dog, err := utils.ResolveDog(r.Context(), us.Search, s.gw, id)
	if err != nil {
		if errors.Is(err, utils.ErrDogNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.upstreamError(w, r, "добавление в избранное", err)
		return
	}

	added, err := us.Favorites.Add(dog)
	if err != nil {
		s.ledgerError(w, err)
		return
	}
	if !added {
		s.writeJSON(w, http.StatusOK, dog)
		return
	}
	s.writeJSON(w, http.StatusCreated, dog)
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}
	if _, err := us.Favorites.Remove(chi.URLParam(r, "id")); err != nil {
		s.ledgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearFavorites(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}
	if err := us.Favorites.Clear(); err != nil {
		s.ledgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestMatch подбор собаки из избранного. избранное не очищается до подтверждения
func (s *Server) requestMatch(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}

	dog, err := us.Matcher.RequestMatch(r.Context(), us.Favorites)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, dog)
	case errors.Is(err, match.ErrEmptyLedger):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, match.ErrInProgress), errors.Is(err, favorites.ErrLedgerHeld):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, catalog.ErrNoMatch):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.upstreamError(w, r, "подбор", err)
	}
}

// ackMatch подтверждение результата подбора. очищает избранное
func (s *Server) ackMatch(w http.ResponseWriter, r *http.Request) {
	us, ok := s.userSession(w, r)
	if !ok {
		return
	}
	if err := us.Favorites.Clear(); err != nil {
		s.ledgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userSession сессия пользователя из контекста запроса. при ошибке ответ уже отправлен
func (s *Server) userSession(w http.ResponseWriter, r *http.Request) (*storage.UserSession, bool) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, "пользователь не определен", http.StatusUnauthorized)
		return nil, false
	}
	us, err := s.db.Session(r.Context(), userID)
	if err != nil {
		s.logger.Error(
			"получение сессии пользователя",
			slog.String("пользователь", userID.String()),
			slog.String("ошибка", err.Error()),
		)
		http.Error(w, "сессия недоступна", http.StatusInternalServerError)
		return nil, false
	}
	return us, true
}

func (s *Server) ledgerError(w http.ResponseWriter, err error) {
	if errors.Is(err, favorites.ErrLedgerHeld) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// upstreamError ответ на ошибку каталога. при потере авторизации авторизуемся заново, клиент повторит запрос
func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op, slog.String("ошибка", err.Error()))
	if errors.Is(err, catalog.ErrUnauthorized) {
		if lerr := s.login(r.Context()); lerr != nil {
			s.logger.Error("повторная авторизация в каталоге", slog.String("ошибка", lerr.Error()))
		}
	}
	http.Error(w, err.Error(), http.StatusBadGateway)
}

// writeJSON отправляет v в формате json со статусом status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	resp, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("кодирование ответа", slog.String("ошибка", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(resp)
}
