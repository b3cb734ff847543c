package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sportshub/config"
	"sportshub/infras/otel/mocks"
	pgMocks "sportshub/infras/postgres/mocks"
	sportMocks "sportshub/internal/domains/sport/mocks"
	sportModel "sportshub/internal/domains/sport/model"
	teamMocks "sportshub/internal/domains/team/mocks"
	"sportshub/internal/domains/team/model"
	"sportshub/internal/domains/team/model/dto"
	"sportshub/internal/domains/team/service"
	cacheMocks "sportshub/shared/cache/mocks"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
)

const coachID = "coach-1"

type fixture struct {
	svc        service.Team
	repo       *teamMocks.MockTeam
	memberRepo *teamMocks.MockMember
	sportRepo  *sportMocks.MockSport
	cache      *cacheMocks.MockRedisCache
	evicted    *evictions
}

// evictions records the single-team cache keys deleted by the service goroutines.
type evictions struct {
	mu   sync.Mutex
	keys []string
}

func (e *evictions) add(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.keys = append(e.keys, key)
}

func (e *evictions) snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.keys...)
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:       teamMocks.NewMockTeam(ctrl),
		memberRepo: teamMocks.NewMockMember(ctrl),
		sportRepo:  sportMocks.NewMockSport(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		evicted:    &evictions{},
	}

	transactor := pgMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		f.evicted.add(key)

		return nil
	}).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.memberRepo, f.sportRepo, transactor, cfg, f.cache, mocks.NewOtel())

	return f
}

func coachContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, coachID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCoach)
}

func roster() []dto.MemberRequest {
	return []dto.MemberRequest{
		{MemberName: "Kasun", RegistrationNumber: "AS2021001", Role: model.MemberRoleCaptain, Faculty: "Faculty of Applied Science", Year: 3},
		{MemberName: "Amaya", RegistrationNumber: "BS2022014", Faculty: "Faculty of Business Studies", Year: 2},
	}
}

func approvedSport() sportModel.Sport {
	return sportModel.Sport{ID: "sport-1", CoachID: coachID, Status: constant.StatusApproved}
}

func TestTeamService_Create(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateTeamRequest{Name: "Faculty XI", SportID: "sport-1", Members: roster()}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "created inactive with roster",
			setupMock: func() {
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, team model.Team) error {
					assert.Equal(t, model.StatusInactive, team.Status)
					assert.Nil(t, team.ParentTeamID)

					return nil
				})
				f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, members []model.TeamMember) error {
					require.Len(t, members, 2)
					assert.Equal(t, model.MemberRoleCaptain, members[0].Role)
					assert.Equal(t, model.MemberRolePlayer, members[1].Role)
					assert.Equal(t, members[0].TeamID, members[1].TeamID)

					return nil
				})
			},
		},
		{
			name: "sport pending",
			setupMock: func() {
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sportModel.Sport{ID: "sport-1", CoachID: coachID, Status: constant.StatusPending}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "sport of another coach",
			setupMock: func() {
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sportModel.Sport{ID: "sport-1", CoachID: "coach-2", Status: constant.StatusApproved}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "sport missing",
			setupMock: func() {
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sportModel.Sport{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "roster insert fails",
			setupMock: func() {
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("invalid faculty"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(coachContext(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusInactive, res.Status)
			assert.Len(t, res.Members, 2)
		})
	}
}

func TestTeamService_ReplaceRoster(t *testing.T) {
	f := newFixture(t)

	team := model.Team{ID: "team-1", SportID: "sport-1", Status: model.StatusActive}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "delete then insert",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(team, nil)
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				gomock.InOrder(
					f.memberRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) error {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "team-1", args[model.MemberFieldTeamID])

						return nil
					}),
					f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil),
				)
			},
		},
		{
			name: "insert failure surfaces so the transaction rolls back",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(team, nil)
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				f.memberRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("invalid input value for enum"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.ReplaceRoster(coachContext(), dto.ReplaceRosterRequest{Members: roster()}, "team-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTeamService_EditRequest(t *testing.T) {
	f := newFixture(t)

	req := dto.EditTeamRequest{Name: "Faculty XI (2025)", Members: roster()}
	original := model.Team{ID: "team-1", Name: "Faculty XI", SportID: "sport-1", Status: model.StatusActive}

	tests := []struct {
		name      string
		setupMock func(forkID *string)
		wantCode  int
	}{
		{
			name: "forks an inactive copy",
			setupMock: func(forkID *string) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(original, nil)
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, model.StatusInactive, fields[model.FieldStatus])

					_, args := filter.GetWhereClause()
					assert.Equal(t, "team-1", args[model.FieldID])

					return nil
				})
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, team model.Team) error {
					assert.Equal(t, model.StatusInactive, team.Status)
					assert.Equal(t, "sport-1", team.SportID)
					assert.Equal(t, "Faculty XI (2025)", team.Name)
					require.NotNil(t, team.ParentTeamID)
					assert.Equal(t, "team-1", *team.ParentTeamID)

					*forkID = team.ID

					return nil
				})
				f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, members []model.TeamMember) error {
					for _, member := range members {
						assert.Equal(t, *forkID, member.TeamID)
					}

					return nil
				})
			},
		},
		{
			name: "team not found",
			setupMock: func(_ *string) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Team{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "not the coach",
			setupMock: func(_ *string) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(original, nil)
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sportModel.Sport{ID: "sport-1", CoachID: "coach-2"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "roster failure after deactivation",
			setupMock: func(_ *string) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(original, nil)
				f.sportRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedSport(), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.memberRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forkID string

			tt.setupMock(&forkID)

			res, err := f.svc.EditRequest(coachContext(), req, "team-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Empty(t, res.NewTeamID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, forkID, res.NewTeamID)

			evicted := f.evicted.snapshot()
			assert.Contains(t, evicted, "team:get:team-1")
			assert.Contains(t, evicted, "team:get:"+forkID)
		})
	}
}

func TestTeamService_Activate(t *testing.T) {
	f := newFixture(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin)

	parent := "team-1"
	fork := model.Team{ID: "team-2", SportID: "sport-1", Status: model.StatusInactive, ParentTeamID: &parent}

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(fork, nil)

	var statuses []string

	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			statuses = append(statuses, fields[model.FieldStatus].(string))

			return nil
		}).Times(4)

	err := f.svc.Activate(ctx, "team-2")

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []string{model.StatusInactive, model.StatusInactive, model.StatusInactive, model.StatusActive}, statuses)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Team{}, nil)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(f.svc.Activate(ctx, "missing")))
}

func TestTeamService_GetAll(t *testing.T) {
	f := newFixture(t)

	sportName := "Cricket"

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, _ := filter.GetWhereClause()
		assert.Contains(t, where, "sports.coach_id")

		return 2, nil
	})
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.TeamDetail, error) {
			assert.Equal(t, "ORDER BY teams.created_at DESC", params.OrderClause())

			return []model.TeamDetail{
				{Team: model.Team{ID: "team-1"}, SportName: &sportName},
				{Team: model.Team{ID: "team-2"}, SportName: &sportName},
			}, nil
		})
	f.memberRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TeamMember{
		{ID: "m1", TeamID: "team-1"},
		{ID: "m2", TeamID: "team-1"},
		{ID: "m3", TeamID: "team-2"},
	}, nil)

	res, err := f.svc.GetAll(coachContext(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Teams, 2)
	assert.Len(t, res.Teams[0].Members, 2)
	assert.Len(t, res.Teams[1].Members, 1)
	assert.Equal(t, "Cricket", res.Teams[0].SportName)
	assert.Equal(t, 1, res.TotalPage)
}
