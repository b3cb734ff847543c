package dto_test

import (
	"net/http/httptest"
	"sportshub/shared/constant"
	"sportshub/shared/dto"
	"sportshub/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	modified := created.Add(time.Hour)

	meta := dto.Metadata{}
	meta.FromModel(model.Metadata{CreatedAt: created, ModifiedAt: modified, CreatedBy: "admin", ModifiedBy: "coach"})

	assert.Equal(t, "admin", meta.CreatedBy)
	assert.Equal(t, "coach", meta.ModifiedBy)
	assert.NotEmpty(t, meta.CreatedAt)
	assert.NotEqual(t, meta.CreatedAt, meta.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			url:      "/v1/teams?page=2&limit=20&sort_by=team_name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "team_name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			url:            "/v1/teams",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "invalid values ignored",
			url:      "/v1/teams?page=-1&limit=abc&sort_dir=sideways",
			expected: dto.QueryParams{},
		},
		{
			name:     "injection attempt in sort_by dropped",
			url:      "/v1/teams?sort_by=name;DROP%20TABLE%20teams&sort_dir=DESC",
			expected: dto.QueryParams{SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.QueryParams{}
			params.FromRequest(httptest.NewRequest("GET", tt.url, nil), tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_OrderClause(t *testing.T) {
	params := dto.QueryParams{
		Sorts: []dto.Sort{
			{Table: "bookings", Field: "date", Dir: dto.SortDirDesc},
			{Table: "bookings", Field: "start_time", Dir: dto.SortDirAsc},
		},
		SortBy:  "ignored",
		SortDir: dto.SortDirAsc,
	}

	assert.Equal(t, "ORDER BY bookings.date DESC, bookings.start_time ASC", params.OrderClause())

	plain := dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}
	assert.Equal(t, "ORDER BY created_at DESC", plain.OrderClause())

	assert.Empty(t, (&dto.QueryParams{}).OrderClause())
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Table: "bookings", Field: "venue_id", Value: "v1", Operator: dto.FilterOperatorEq},
		dto.Filter{Table: "bookings", Field: "start_time", ArgName: "end", Value: "12:00", Operator: dto.FilterOperatorLess},
		dto.Filter{Table: "bookings", Field: "end_time", ArgName: "start", Value: "10:00", Operator: dto.FilterOperatorGreater},
		dto.Filter{Table: "bookings", Field: "id", ArgName: "exclude_id", Value: "b1", Operator: dto.FilterOperatorNotEq},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.venue_id = :venue_id AND bookings.start_time < :end AND bookings.end_time > :start AND bookings.id != :exclude_id)", where)
	assert.Equal(t, map[string]any{"venue_id": "v1", "end": "12:00", "start": "10:00", "exclude_id": "b1"}, args)
}

func TestFilter_In(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{"Pending", "Rejected"}, Operator: dto.FilterOperatorIn}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "status IN (:status_0, :status_1)", where)
	assert.Len(t, args, 2)
}

func TestFilter_InEmptyMatchesNothing(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "FALSE", where)
	assert.Empty(t, args)
}

func TestFilterGroup_NestedOr(t *testing.T) {
	group := dto.And(
		dto.Filter{Table: "teams", Field: "sport_id", Value: "s1", Operator: dto.FilterOperatorEq},
		dto.Or(
			dto.Filter{Table: "teams", Field: "id", Value: "t1", Operator: dto.FilterOperatorEq},
			dto.Filter{Table: "teams", Field: "parent_team_id", Value: "t1", Operator: dto.FilterOperatorEq},
		),
		dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(teams.sport_id = :sport_id AND (teams.id = :id OR teams.parent_team_id = :parent_team_id))", where)
	assert.Equal(t, map[string]any{"sport_id": "s1", "id": "t1", "parent_team_id": "t1"}, args)
}

func TestFilterGroup_ClauseFromReturnedValue(t *testing.T) {
	where, args := dto.And(dto.Filter{Table: "teams", Field: "status", Value: "Active", Operator: dto.FilterOperatorEq}).GetWhereClause()

	assert.Equal(t, "(teams.status = :status)", where)
	assert.Equal(t, map[string]any{"status": "Active"}, args)
}
