// пакет model служит для представления используемых моделей приложения
package model

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// DefaultPageSize размер страницы по умолчанию
	DefaultPageSize = 25

	// MaxPageSize максимальный размер страницы, который принимает каталог
	MaxPageSize = 100
)

var (
	ErrInvalidCriteria = errors.New("некорректные критерии поиска")
	// ErrInvalidLocationSearch некорректные параметры поиска почтовых индексов
	ErrInvalidLocationSearch = errors.New("некорректные параметры поиска индексов")
)

// Dog запись о собаке в каталоге. после получения не изменяется
type Dog struct {
	ID      string `json:"id"`
	Img     string `json:"img"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	ZipCode string `json:"zip_code"`
	Breed   string `json:"breed"`
}

// SortField поле сортировки
type SortField string

const (
	SortByBreed SortField = "breed"
	SortByName  SortField = "name"
	SortByAge   SortField = "age"
)

// Valid проверяет, что поле сортировки из допустимого набора
func (f SortField) Valid() bool {
	switch f {
	case SortByBreed, SortByName, SortByAge:
		return true
	}
	return false
}

// SortDirection направление сортировки
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// Criteria критерии поиска
type Criteria struct {
	Breeds    []string      `json:"breeds,omitempty"`
	ZipCodes  []string      `json:"zip_codes,omitempty"`
	AgeMin    *int          `json:"age_min,omitempty"`
	AgeMax    *int          `json:"age_max,omitempty"`
	Sort      SortField     `json:"sort"`
	Direction SortDirection `json:"direction"`
	Size      int           `json:"size"`
}

// DefaultCriteria критерии, с которыми начинается сессия поиска
func DefaultCriteria(size int) Criteria {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Criteria{
		Sort:      SortByBreed,
		Direction: SortAsc,
		Size:      size,
	}
}

// SortExpression поле и направление сортировки в виде одного выражения "field:direction"
func (c Criteria) SortExpression() string {
	field := c.Sort
	if field == "" {
		field = SortByBreed
	}
	direction := c.Direction
	if direction == "" {
		direction = SortAsc
	}
	return string(field) + ":" + string(direction)
}

// PageSize размер страницы. если не задан, то DefaultPageSize
func (c Criteria) PageSize() int {
	if c.Size <= 0 {
		return DefaultPageSize
	}
	return c.Size
}

// Validate проверка критериев
func (c Criteria) Validate() error {
	if c.Sort != "" && !c.Sort.Valid() {
		return fmt.Errorf("%w. поле сортировки %q", ErrInvalidCriteria, c.Sort)
	}
	if c.Direction != "" && !c.Direction.Valid() {
		return fmt.Errorf("%w. направление сортировки %q", ErrInvalidCriteria, c.Direction)
	}
	if c.Size < 0 || c.Size > MaxPageSize {
		return fmt.Errorf("%w. размер страницы %d", ErrInvalidCriteria, c.Size)
	}
	if c.AgeMin != nil && *c.AgeMin < 0 {
		return fmt.Errorf("%w. минимальный возраст %d", ErrInvalidCriteria, *c.AgeMin)
	}
	if c.AgeMax != nil && *c.AgeMax < 0 {
		return fmt.Errorf("%w. максимальный возраст %d", ErrInvalidCriteria, *c.AgeMax)
	}
	if c.AgeMin != nil && c.AgeMax != nil && *c.AgeMin > *c.AgeMax {
		return fmt.Errorf("%w. минимальный возраст больше максимального", ErrInvalidCriteria)
	}
	return nil
}

// Clone глубокая копия критериев
func (c Criteria) Clone() Criteria {
	c.Breeds = slices.Clone(c.Breeds)
	c.ZipCodes = slices.Clone(c.ZipCodes)
	if c.AgeMin != nil {
		v := *c.AgeMin
		c.AgeMin = &v
	}
	if c.AgeMax != nil {
		v := *c.AgeMax
		c.AgeMax = &v
	}
	return c
}

// CriteriaPatch частичное изменение критериев. nil поля остаются без изменений.
// пустой (не nil) список пород снимает фильтр по породам, отрицательный возраст снимает ограничение
type CriteriaPatch struct {
	Breeds    *[]string      `json:"breeds,omitempty"`
	ZipCodes  *[]string      `json:"zip_codes,omitempty"`
	AgeMin    *int           `json:"age_min,omitempty"`
	AgeMax    *int           `json:"age_max,omitempty"`
	Sort      *SortField     `json:"sort,omitempty"`
	Direction *SortDirection `json:"direction,omitempty"`
	Size      *int           `json:"size,omitempty"`
}

// Apply поверхностное слияние patch с критериями c
func (c Criteria) Apply(p CriteriaPatch) Criteria {
	c = c.Clone()
	if p.Breeds != nil {
		c.Breeds = slices.Clone(*p.Breeds)
		if len(c.Breeds) == 0 {
			c.Breeds = nil
		}
	}
	if p.ZipCodes != nil {
		c.ZipCodes = slices.Clone(*p.ZipCodes)
		if len(c.ZipCodes) == 0 {
			c.ZipCodes = nil
		}
	}
	if p.AgeMin != nil {
		c.AgeMin = ageBound(*p.AgeMin)
	}
	if p.AgeMax != nil {
		c.AgeMax = ageBound(*p.AgeMax)
	}
	if p.Sort != nil {
		c.Sort = *p.Sort
	}
	if p.Direction != nil {
		c.Direction = *p.Direction
	}
	if p.Size != nil {
		c.Size = *p.Size
	}
	return c
}

func ageBound(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

// SearchQuery запрос поиска идентификаторов к каталогу.
// если Cursor не пустой, то он передается каталогу как есть, а остальные поля не используются
type SearchQuery struct {
	Criteria Criteria
	Cursor   string
	From     int
}

// SearchIDs ответ каталога на поиск идентификаторов
type SearchIDs struct {
	ResultIDs []string `json:"resultIds"`
	Total     int      `json:"total"`
	Next      string   `json:"next,omitempty"`
	Prev      string   `json:"prev,omitempty"`
}

// Match ответ каталога на запрос подбора
type Match struct {
	Match string `json:"match"`
}

// Location описание почтового индекса
type Location struct {
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	County    string  `json:"county"`
}

// MaxLocationSearchSize максимальный размер страницы поиска почтовых индексов
const MaxLocationSearchSize = 10000

// Coordinates точка на карте
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoBoundingBox прямоугольная область поиска. задаются либо стороны, либо пара противоположных углов
type GeoBoundingBox struct {
	Top         *Coordinates `json:"top,omitempty"`
	Left        *Coordinates `json:"left,omitempty"`
	Bottom      *Coordinates `json:"bottom,omitempty"`
	Right       *Coordinates `json:"right,omitempty"`
	BottomLeft  *Coordinates `json:"bottom_left,omitempty"`
	TopLeft     *Coordinates `json:"top_left,omitempty"`
	BottomRight *Coordinates `json:"bottom_right,omitempty"`
	TopRight    *Coordinates `json:"top_right,omitempty"`
}

// LocationSearch поиск почтовых индексов по городу, штатам или области на карте
type LocationSearch struct {
	City           string          `json:"city,omitempty"`
	States         []string        `json:"states,omitempty"`
	GeoBoundingBox *GeoBoundingBox `json:"geoBoundingBox,omitempty"`
	Size           int             `json:"size,omitempty"`
	From           int             `json:"from,omitempty"`
}

// Validate проверка параметров поиска. нулевой размер означает размер по умолчанию каталога
func (l LocationSearch) Validate() error {
	if l.Size < 0 || l.Size > MaxLocationSearchSize {
		return fmt.Errorf("%w. размер страницы %d", ErrInvalidLocationSearch, l.Size)
	}
	if l.From < 0 {
		return fmt.Errorf("%w. смещение %d", ErrInvalidLocationSearch, l.From)
	}
	for _, st := range l.States {
		if len(st) != 2 {
			return fmt.Errorf("%w. штат %q", ErrInvalidLocationSearch, st)
		}
	}
	return nil
}

// LocationSearchResult ответ каталога на поиск почтовых индексов
type LocationSearchResult struct {
	Results []Location `json:"results"`
	Total   int        `json:"total"`
}

// Page страница результатов поиска
type Page struct {
	Number  int   `json:"page"`
	Size    int   `json:"size"`
	Total   int   `json:"total"`
	Pages   int   `json:"pages"`
	Records []Dog `json:"records"`
}

// PageCount количество страниц для total записей при размере страницы size
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
