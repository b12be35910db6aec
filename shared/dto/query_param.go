package dto

import (
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing Page and Limit fall back to the defaults.
// Without it, only the parameters present in the request are set and an
// unpaged QueryParams selects the whole collection.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Window returns the [start, end) slice bounds of the requested page over
// total items. An unpaged request spans everything.
func (q *QueryParams) Window(total int) (start, end int) {
	if q.Limit <= 0 {
		return 0, total
	}

	page := max(q.Page, 1)

	start = min((page-1)*q.Limit, total)
	end = min(start+q.Limit, total)

	return start, end
}

// FilterFromQuery builds an AND group from the query parameters named in
// operators that are present on the request.
func FilterFromQuery(r *http.Request, operators map[string]string) FilterGroup {
	group := FilterGroup{
		Operator: FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	query := r.URL.Query()

	for _, field := range slices.Sorted(maps.Keys(operators)) {
		operator := operators[field]

		value := strings.TrimSpace(query.Get(field))
		if value == constant.Empty {
			continue
		}

		group.Filters = append(group.Filters, Filter{
			Field:    field,
			Operator: operator,
			Value:    value,
		})
	}

	return group
}
