package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortExpression(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected string
	}{
		{"по умолчанию", Criteria{}, "breed:asc"},
		{"направление по умолчанию", Criteria{Sort: SortByAge}, "age:asc"},
		{"поле и направление", Criteria{Sort: SortByAge, Direction: SortDesc}, "age:desc"},
		{"только направление", Criteria{Direction: SortDesc}, "breed:desc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.criteria.SortExpression(), tt.name)
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 5, PageCount(101, 25))
	assert.Equal(t, 4, PageCount(100, 25))
	assert.Equal(t, 1, PageCount(1, 25))
	assert.Equal(t, 0, PageCount(0, 25))
	assert.Equal(t, 5, PageCount(101, 0))
}

func TestApply(t *testing.T) {
	age := 3
	start := Criteria{
		Breeds:    []string{"Poodle"},
		AgeMin:    &age,
		Sort:      SortByName,
		Direction: SortDesc,
		Size:      10,
	}

	size := 50
	res := start.Apply(CriteriaPatch{Size: &size})
	assert.Equal(t, 50, res.Size)
	assert.Equal(t, []string{"Poodle"}, res.Breeds)
	assert.Equal(t, SortByName, res.Sort)
	assert.Equal(t, SortDesc, res.Direction)
	require.NotNil(t, res.AgeMin)
	assert.Equal(t, 3, *res.AgeMin)
	// исходные критерии не изменились
	assert.Equal(t, 10, start.Size)

	empty := []string{}
	res = start.Apply(CriteriaPatch{Breeds: &empty})
	assert.Nil(t, res.Breeds)

	clearAge := -1
	res = start.Apply(CriteriaPatch{AgeMin: &clearAge})
	assert.Nil(t, res.AgeMin)

	breeds := []string{"Akita"}
	res = start.Apply(CriteriaPatch{Breeds: &breeds})
	breeds[0] = "Beagle"
	assert.Equal(t, []string{"Akita"}, res.Breeds)
}

func TestValidate(t *testing.T) {
	one, two := 1, 2
	tests := []struct {
		name     string
		criteria Criteria
		valid    bool
	}{
		{"пустые", Criteria{}, true},
		{"по умолчанию", DefaultCriteria(0), true},
		{"неизвестное поле", Criteria{Sort: "color"}, false},
		{"неизвестное направление", Criteria{Direction: "up"}, false},
		{"большая страница", Criteria{Size: MaxPageSize + 1}, false},
		{"возраст", Criteria{AgeMin: &one, AgeMax: &two}, true},
		{"перепутан возраст", Criteria{AgeMin: &two, AgeMax: &one}, false},
	}
	for _, tt := range tests {
		err := tt.criteria.Validate()
		if tt.valid {
			assert.NoError(t, err, tt.name)
			continue
		}
		assert.ErrorIs(t, err, ErrInvalidCriteria, tt.name)
	}
}

func TestLocationSearchValidate(t *testing.T) {
	tests := []struct {
		name  string
		query LocationSearch
		valid bool
	}{
		{"пустой запрос", LocationSearch{}, true},
		{"город и штаты", LocationSearch{City: "Austin", States: []string{"TX", "OK"}, Size: 100}, true},
		{"максимальный размер", LocationSearch{Size: MaxLocationSearchSize}, true},
		{"отрицательный размер", LocationSearch{Size: -1}, false},
		{"слишком большой размер", LocationSearch{Size: MaxLocationSearchSize + 1}, false},
		{"отрицательное смещение", LocationSearch{From: -25}, false},
		{"штат не из двух букв", LocationSearch{States: []string{"Texas"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidLocationSearch)
		})
	}
}
