package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sportshub/infras/otel/mocks"
	"sportshub/internal/domains/coach/service"
	sportMocks "sportshub/internal/domains/sport/mocks"
	sportModel "sportshub/internal/domains/sport/model"
	teamMocks "sportshub/internal/domains/team/mocks"
	teamModel "sportshub/internal/domains/team/model"
	userMocks "sportshub/internal/domains/user/mocks"
	userModel "sportshub/internal/domains/user/model"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
)

type fixture struct {
	svc    service.Coach
	users  *userMocks.MockUser
	sports *sportMocks.MockSport
	teams  *teamMocks.MockTeam
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		users:  userMocks.NewMockUser(ctrl),
		sports: sportMocks.NewMockSport(ctrl),
		teams:  teamMocks.NewMockTeam(ctrl),
	}
	f.svc = service.New(f.users, f.sports, f.teams, mocks.NewOtel())

	return f
}

func TestCoachService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]userModel.User, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(users.role = :role)", where)
			assert.Equal(t, constant.RoleCoach, args["role"])
			assert.Equal(t, "ORDER BY users.name ASC", params.OrderClause())
			assert.NotContains(t, columns, userModel.FieldPassword)

			return []userModel.User{{ID: "coach-1", Name: "Ana", Role: constant.RoleCoach}}, nil
		})

	res, err := f.svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "coach-1", res.Coaches[0].ID)
}

func TestCoachService_GetDetails(t *testing.T) {
	coach := userModel.User{ID: "coach-1", Name: "Ana", Role: constant.RoleCoach}
	football := "Football"

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "sports and teams of the coach",
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
						where, args := filter.GetWhereClause()

						assert.Equal(t, "(users.id = :id AND users.role = :role)", where)
						assert.Equal(t, "coach-1", args["id"])

						return coach, nil
					})
				f.sports.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]sportModel.SportDetail, error) {
						where, _ := filter.GetWhereClause()
						assert.Equal(t, "(sports.coach_id = :coach_id)", where)

						return []sportModel.SportDetail{{Sport: sportModel.Sport{ID: "sport-1", Name: football}}}, nil
					})
				f.teams.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]teamModel.TeamDetail, error) {
						where, _ := filter.GetWhereClause()
						assert.Equal(t, "(sports.coach_id = :coach_id)", where)

						return []teamModel.TeamDetail{{Team: teamModel.Team{ID: "team-1", SportID: "sport-1"}, SportName: &football}}, nil
					})
			},
		},
		{
			name: "not a coach",
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "teams query fails",
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(coach, nil)
				f.sports.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				f.teams.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetDetails(context.Background(), "coach-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "coach-1", res.Coach.ID)
			assert.Len(t, res.Sports, 1)
			assert.Len(t, res.Teams, 1)
			assert.Equal(t, "sport-1", res.Teams[0].SportID)
		})
	}
}
