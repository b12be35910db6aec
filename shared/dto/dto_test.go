package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{ID: "b-1", CreatedAt: createdAt, ModifiedAt: modifiedAt})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)

	empty := &dto.Metadata{}
	empty.FromModel(model.Metadata{ID: "b-2"})

	assert.Empty(t, empty.CreatedAt)
	assert.Empty(t, empty.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all valid parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unpaged without defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page and limit fall back",
			query:          "page=invalid&limit=-10",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "zero page falls back",
			query:          "page=0",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction is ignored",
			query:    "sort_by=checkIn&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "checkIn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings?"+tt.query, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Window(t *testing.T) {
	tests := []struct {
		name       string
		params     dto.QueryParams
		total      int
		start, end int
	}{
		{name: "unpaged", params: dto.QueryParams{}, total: 17, start: 0, end: 17},
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 8}, total: 17, start: 0, end: 8},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 8}, total: 17, start: 16, end: 17},
		{name: "past the end", params: dto.QueryParams{Page: 5, Limit: 8}, total: 17, start: 17, end: 17},
		{name: "empty collection", params: dto.QueryParams{Page: 1, Limit: 8}, total: 0, start: 0, end: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)

			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	operators := map[string]string{
		"type":    dto.FilterOperatorEq,
		"name":    dto.FilterOperatorLike,
		"checkIn": dto.FilterOperatorGreaterEq,
	}

	req := httptest.NewRequest(http.MethodGet, "/bookings?name=%20som%20&type=Deluxe&ignored=1&checkIn=", nil)

	group := dto.FilterFromQuery(req, operators)

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	require.Len(t, group.Filters, 2)
	assert.Equal(t, dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "som"}, group.Filters[0])
	assert.Equal(t, dto.Filter{Field: "type", Operator: dto.FilterOperatorEq, Value: "Deluxe"}, group.Filters[1])

	empty := dto.FilterFromQuery(httptest.NewRequest(http.MethodGet, "/bookings", nil), operators)
	assert.True(t, empty.IsEmpty())
}

func TestFilter_Match(t *testing.T) {
	fields := map[string]any{
		"name":     "Somchai Jaidee",
		"type":     "Deluxe",
		"amount":   float64(2),
		"checkIn":  "2024-03-01",
		"note":     "",
		"roomNo":   "204",
		"category": "Utilities",
	}

	tests := []struct {
		name   string
		filter dto.Filter
		want   bool
	}{
		{name: "eq", filter: dto.Filter{Field: "type", Operator: dto.FilterOperatorEq, Value: "Deluxe"}, want: true},
		{name: "eq missing field", filter: dto.Filter{Field: "floor", Operator: dto.FilterOperatorEq, Value: "2"}, want: false},
		{name: "eq numeric string", filter: dto.Filter{Field: "amount", Operator: dto.FilterOperatorEq, Value: "2"}, want: true},
		{name: "not eq", filter: dto.Filter{Field: "type", Operator: dto.FilterOperatorNotEq, Value: "Suite"}, want: true},
		{name: "like ignores case", filter: dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "JAIDEE"}, want: true},
		{name: "in list", filter: dto.Filter{Field: "roomNo", Operator: dto.FilterOperatorIn, Value: []string{"101", "204"}}, want: true},
		{name: "in comma string", filter: dto.Filter{Field: "category", Operator: dto.FilterOperatorIn, Value: "Salary, Utilities"}, want: true},
		{name: "greater eq day", filter: dto.Filter{Field: "checkIn", Operator: dto.FilterOperatorGreaterEq, Value: "2024-02-28"}, want: true},
		{name: "less eq day", filter: dto.Filter{Field: "checkIn", Operator: dto.FilterOperatorLessEq, Value: "2024-02-28"}, want: false},
		{name: "is null on empty", filter: dto.Filter{Field: "note", Operator: dto.FilterIsNull}, want: true},
		{name: "is not null", filter: dto.Filter{Field: "name", Operator: dto.FilterIsNotNull}, want: true},
		{name: "unknown operator", filter: dto.Filter{Field: "name", Operator: "regex", Value: ".*"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(fields))
		})
	}
}

func TestFilterGroup_Match(t *testing.T) {
	fields := map[string]any{"type": "Suite", "amount": float64(4)}

	suite := dto.Filter{Field: "type", Operator: dto.FilterOperatorEq, Value: "Suite"}
	small := dto.Filter{Field: "amount", Operator: dto.FilterOperatorLessEq, Value: 2}

	and := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{suite, small}}
	or := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{suite, small}}
	nested := dto.FilterGroup{Filters: []any{or, suite}}

	assert.False(t, and.Match(fields))
	assert.True(t, or.Match(fields))
	assert.True(t, nested.Match(fields))
	assert.True(t, (&dto.FilterGroup{}).Match(fields))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, dto.Compare(nil, nil))
	assert.Equal(t, -1, dto.Compare(nil, "a"))
	assert.Equal(t, 1, dto.Compare("a", nil))
	assert.Equal(t, -1, dto.Compare(float64(9), "10"))
	assert.Equal(t, 1, dto.Compare("2024-03-02", "2024-03-01"))
}
