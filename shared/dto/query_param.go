package dto

import (
	"fmt"
	"net/http"
	"sportshub/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is one ORDER BY term. Sorts are fixed by services, never taken from the request.
type Sort struct {
	Table string
	Field string
	Dir   string
}

func (s Sort) String() string {
	column := s.Field
	if s.Table != "" {
		column = s.Table + "." + s.Field
	}

	dir := SortDirAsc
	if strings.EqualFold(s.Dir, SortDirDesc) {
		dir = SortDirDesc
	}

	return fmt.Sprintf("%s %s", column, dir)
}

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Sorts   []Sort `json:"-"`
}

// OrderClause renders ORDER BY from Sorts when present, falling back to SortBy/SortDir.
func (q *QueryParams) OrderClause() string {
	if len(q.Sorts) > 0 {
		terms := make([]string, len(q.Sorts))
		for i, sort := range q.Sorts {
			terms[i] = sort.String()
		}

		return "ORDER BY " + strings.Join(terms, ", ")
	}

	if q.SortBy != "" && q.SortDir != "" {
		return fmt.Sprintf("ORDER BY %s %s", q.SortBy, q.SortDir)
	}

	return ""
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, Page and Limit fall back to the package defaults.
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

	if sortBy := queryParams.Get(constant.RequestParamSortBy); isSortable(sortBy) {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
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

// isSortable accepts plain identifiers only, since SortBy is interpolated into ORDER BY.
func isSortable(field string) bool {
	if field == "" {
		return false
	}

	for _, r := range field {
		if r != '_' && r != '.' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}

	return true
}
