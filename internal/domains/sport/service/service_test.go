package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sportshub/config"
	"sportshub/infras/otel/mocks"
	s3Mocks "sportshub/infras/s3/mocks"
	sportMocks "sportshub/internal/domains/sport/mocks"
	"sportshub/internal/domains/sport/model"
	"sportshub/internal/domains/sport/model/dto"
	"sportshub/internal/domains/sport/service"
	cacheMocks "sportshub/shared/cache/mocks"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgo="

type fixture struct {
	svc     service.Sport
	repo    *sportMocks.MockSport
	storage *s3Mocks.MockStorage
	cache   *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:    sportMocks.NewMockSport(ctrl),
		storage: s3Mocks.NewMockStorage(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.storage, cfg, f.cache, mocks.NewOtel())

	return f
}

func coachContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "coach-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCoach)
}

func TestSportService_Create(t *testing.T) {
	f := newFixture(t)

	imageURL := "https://cdn.campus.lk/sports/cricket.png"

	tests := []struct {
		name      string
		req       dto.CreateSportRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "pending request owned by caller",
			req:  dto.CreateSportRequest{Name: "Cricket", Description: "Hard ball"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sport model.Sport) error {
					assert.Equal(t, constant.StatusPending, sport.Status)
					assert.Equal(t, "coach-1", sport.CoachID)
					assert.Nil(t, sport.ImageURL)

					return nil
				})
			},
		},
		{
			name: "uploads image",
			req:  dto.CreateSportRequest{Name: "Cricket", Image: pngDataURI},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().Upload(gomock.Any(), "sports", gomock.Any(), "image/png", gomock.Any()).Return(imageURL, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sport model.Sport) error {
					assert.Equal(t, &imageURL, sport.ImageURL)

					return nil
				})
			},
		},
		{
			name: "image removed when insert fails",
			req:  dto.CreateSportRequest{Name: "Cricket", Image: pngDataURI},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(imageURL, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
				f.storage.EXPECT().Delete(gomock.Any(), imageURL).Return(nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "duplicate name",
			req:  dto.CreateSportRequest{Name: "Cricket"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "invalid image payload",
			req:  dto.CreateSportRequest{Name: "Cricket", Image: "not-a-data-uri"},
			setupMock: func() {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(coachContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, constant.StatusPending, res.Status)
		})
	}
}

func TestSportService_ListMine(t *testing.T) {
	f := newFixture(t)

	coachName := "Nimal"

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		where, args := filter.GetWhereClause()
		assert.Contains(t, where, "sports.coach_id = :coach_id")
		assert.Equal(t, "coach-1", args[model.FieldCoachID])
		assert.Equal(t, constant.StatusApproved, args[model.FieldStatus])

		return 1, nil
	})
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.SportDetail{
		{Sport: model.Sport{ID: "s1", Name: "Cricket", CoachID: "coach-1", Status: constant.StatusApproved}, CoachName: &coachName},
	}, nil)

	res, err := f.svc.ListMine(coachContext())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Sports, 1)
	assert.Equal(t, "Nimal", res.Sports[0].CoachName)
}

func TestSportService_UpdateStatus(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.UpdateStatus(context.Background(), dto.UpdateSportStatusRequest{Status: constant.StatusApproved}, "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Equal(t, constant.StatusApproved, fields[model.FieldStatus])

		return nil
	})

	err = f.svc.UpdateStatus(context.Background(), dto.UpdateSportStatusRequest{Status: constant.StatusApproved}, "s1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestSportService_Delete(t *testing.T) {
	f := newFixture(t)

	imageURL := "https://cdn.campus.lk/sports/cricket.png"

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "not found",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Sport{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "still referenced",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Sport{ID: "s1", ImageURL: &imageURL}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "deletes sport and image",
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Sport{ID: "s1", ImageURL: &imageURL}, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.storage.EXPECT().Delete(gomock.Any(), imageURL).Return(errors.New("bucket unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(context.Background(), "s1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
