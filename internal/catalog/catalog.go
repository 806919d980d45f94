// пакет catalog граница с удаленным каталогом собак.
// все обращения к каталогу идут только через него
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kTowkA/dogfinder/internal/model"
)

const (
	// hydrateBatch максимальное количество идентификаторов в одном запросе /dogs
	hydrateBatch = 100

	// errBodyLimit сколько символов тела ответа попадает в сообщение об ошибке
	errBodyLimit = 256
)

type Gateway interface {
	// ListBreeds список всех пород
	ListBreeds(ctx context.Context) ([]string, error)

	// SearchIDs поиск идентификаторов собак по критериям или по курсору
	SearchIDs(ctx context.Context, query model.SearchQuery) (model.SearchIDs, error)

	// Hydrate получение полных записей по идентификаторам
	Hydrate(ctx context.Context, ids []string) ([]model.Dog, error)

	// MatchFavorites подбор одной собаки из списка идентификаторов
	MatchFavorites(ctx context.Context, ids []string) (string, error)

	// Locations описание почтовых индексов
	Locations(ctx context.Context, zips []string) ([]model.Location, error)

	// SearchLocations поиск почтовых индексов по городу, штатам или области на карте
	SearchLocations(ctx context.Context, query model.LocationSearch) (model.LocationSearchResult, error)

	// Login авторизация в каталоге
	Login(ctx context.Context, name, email string) error

	// Logout завершение авторизации в каталоге
	Logout(ctx context.Context) error
}

// Client реализация Gateway поверх HTTP
type Client struct {
	rc     *resty.Client
	logger *slog.Logger
}

// NewClient создает клиента каталога с адресом baseURL. авторизационная cookie хранится в клиенте
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("создание клиента каталога. %w", err)
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(u.String(), "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		rc:     rc,
		logger: log,
	}, nil
}

func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	breeds := []string{}
	if err := c.do(ctx, c.rc.R().SetContext(ctx), http.MethodGet, "/dogs/breeds", &breeds); err != nil {
		return nil, fmt.Errorf("получение списка пород. %w", err)
	}
	return breeds, nil
}

func (c *Client) SearchIDs(ctx context.Context, query model.SearchQuery) (model.SearchIDs, error) {
	req := c.rc.R().SetContext(ctx)
	path := "/dogs/search"
	if query.Cursor != "" {
		// курсор это готовый путь с параметрами, сами его не собираем
		path = query.Cursor
	} else {
		req.SetQueryParamsFromValues(searchValues(query))
	}

	result := model.SearchIDs{}
	if err := c.do(ctx, req, http.MethodGet, path, &result); err != nil {
		return model.SearchIDs{}, fmt.Errorf("поиск идентификаторов. %w", err)
	}
	if result.ResultIDs == nil {
		result.ResultIDs = []string{}
	}
	return result, nil
}

func searchValues(query model.SearchQuery) url.Values {
	c := query.Criteria
	v := url.Values{}
	for _, b := range c.Breeds {
		v.Add("breeds", b)
	}
	for _, z := range c.ZipCodes {
		v.Add("zipCodes", z)
	}
	if c.AgeMin != nil {
		v.Set("ageMin", strconv.Itoa(*c.AgeMin))
	}
	if c.AgeMax != nil {
		v.Set("ageMax", strconv.Itoa(*c.AgeMax))
	}
	v.Set("sort", c.SortExpression())
	v.Set("size", strconv.Itoa(c.PageSize()))
	if query.From > 0 {
		v.Set("from", strconv.Itoa(query.From))
	}
	return v
}

func (c *Client) Hydrate(ctx context.Context, ids []string) ([]model.Dog, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyIDs
	}
	dogs := make([]model.Dog, 0, len(ids))
	for start := 0; start < len(ids); start += hydrateBatch {
		end := min(start+hydrateBatch, len(ids))
		batch := []model.Dog{}
		req := c.rc.R().SetContext(ctx).SetBody(ids[start:end])
		if err := c.do(ctx, req, http.MethodPost, "/dogs", &batch); err != nil {
			return nil, fmt.Errorf("получение записей о собаках. %w", err)
		}
		dogs = append(dogs, batch...)
	}
	return dogs, nil
}

func (c *Client) MatchFavorites(ctx context.Context, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrEmptyIDs
	}
	result := model.Match{}
	err := c.do(ctx, c.rc.R().SetContext(ctx).SetBody(ids), http.MethodPost, "/dogs/match", &result)
	var te *TransportError
	if errors.As(err, &te) && te.Status == http.StatusNotFound {
		return "", ErrNoMatch
	}
	if err != nil {
		return "", fmt.Errorf("подбор собаки. %w", err)
	}
	if result.Match == "" {
		return "", ErrNoMatch
	}
	return result.Match, nil
}

func (c *Client) Locations(ctx context.Context, zips []string) ([]model.Location, error) {
	if len(zips) == 0 {
		return []model.Location{}, nil
	}
	// для неизвестных индексов каталог возвращает null
	raw := []*model.Location{}
	if err := c.do(ctx, c.rc.R().SetContext(ctx).SetBody(zips), http.MethodPost, "/locations", &raw); err != nil {
		return nil, fmt.Errorf("получение описания индексов. %w", err)
	}
	locations := make([]model.Location, 0, len(raw))
	for _, l := range raw {
		if l != nil {
			locations = append(locations, *l)
		}
	}
	return locations, nil
}

func (c *Client) SearchLocations(ctx context.Context, query model.LocationSearch) (model.LocationSearchResult, error) {
	result := model.LocationSearchResult{}
	if err := c.do(ctx, c.rc.R().SetContext(ctx).SetBody(query), http.MethodPost, "/locations/search", &result); err != nil {
		return model.LocationSearchResult{}, fmt.Errorf("поиск почтовых индексов. %w", err)
	}
	if result.Results == nil {
		result.Results = []model.Location{}
	}
	return result, nil
}

func (c *Client) Login(ctx context.Context, name, email string) error {
	body := map[string]string{
		"name":  name,
		"email": email,
	}
	if err := c.do(ctx, c.rc.R().SetContext(ctx).SetBody(body), http.MethodPost, "/auth/login", nil); err != nil {
		return fmt.Errorf("авторизация в каталоге. %w", err)
	}
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, c.rc.R().SetContext(ctx), http.MethodPost, "/auth/logout", nil); err != nil {
		return fmt.Errorf("выход из каталога. %w", err)
	}
	return nil
}

// do выполняет запрос и раскодирует json ответ в out (если out не nil)
func (c *Client) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Message: err.Error(), Err: err}
	}
	c.logger.DebugContext(
		ctx,
		"запрос к каталогу",
		slog.String("метод", method),
		slog.String("путь", path),
		slog.Int("статус", resp.StatusCode()),
		slog.Duration("длительность", time.Since(start)),
	)
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return &TransportError{
			Status:  resp.StatusCode(),
			Message: errMessage(resp),
		}
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return &TransportError{
			Status:  resp.StatusCode(),
			Message: fmt.Sprintf("некорректный ответ. %v", err),
			Err:     err,
		}
	}
	return nil
}

func errMessage(resp *resty.Response) string {
	msg := strings.TrimSpace(resp.String())
	if msg == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(msg) > errBodyLimit {
		msg = msg[:errBodyLimit]
	}
	return msg
}
