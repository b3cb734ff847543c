package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"sportshub/config"
	"sportshub/infras/otel/mocks"
	s3Mocks "sportshub/infras/s3/mocks"
	postMocks "sportshub/internal/domains/post/mocks"
	"sportshub/internal/domains/post/model"
	"sportshub/internal/domains/post/model/dto"
	"sportshub/internal/domains/post/service"
	cacheMocks "sportshub/shared/cache/mocks"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgo="

type fixture struct {
	svc     service.Post
	repo    *postMocks.MockPost
	storage *s3Mocks.MockStorage
	cache   *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T, kind model.Kind) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:    postMocks.NewMockPost(ctrl),
		storage: s3Mocks.NewMockStorage(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(kind, f.repo, f.storage, cfg, f.cache, mocks.NewOtel())

	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestPostService_Create(t *testing.T) {
	f := newFixture(t, model.KindNews)
	oid := primitive.NewObjectID()

	tests := []struct {
		name      string
		req       dto.CreatePostRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "with image",
			req:  dto.CreatePostRequest{Title: "Freshers' Meet", Description: "Results", Date: "2025-02-01", Image: pngDataURI},
			setupMock: func() {
				f.storage.EXPECT().Upload(gomock.Any(), "news", gomock.Any(), "image/png", gomock.Any()).Return("https://cdn.campus.lk/news/a.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, post model.Post) (string, error) {
					assert.Equal(t, "https://cdn.campus.lk/news/a.png", post.ImagePath)
					assert.Equal(t, "admin-1", post.CreatedBy)
					assert.Equal(t, "2025-02-01", post.Date.Format(constant.DayFormat))

					return oid.Hex(), nil
				})
			},
		},
		{
			name: "insert failure removes the upload",
			req:  dto.CreatePostRequest{Title: "Freshers' Meet", Description: "Results", Date: "2025-02-01", Image: pngDataURI},
			setupMock: func() {
				f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.campus.lk/news/b.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return("", errors.New("mongo down"))
				f.storage.EXPECT().Delete(gomock.Any(), "https://cdn.campus.lk/news/b.png").Return(nil)
			},
			wantErr: true,
		},
		{
			name: "without image",
			req:  dto.CreatePostRequest{Title: "Closed for exams", Description: "Pool closed", Date: "2025-02-10"},
			setupMock: func() {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(oid.Hex(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(adminContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, oid.Hex(), res.ID)
			assert.Equal(t, tt.req.Title, res.Title)
		})
	}
}

func TestPostService_GetAll(t *testing.T) {
	f := newFixture(t, model.KindAnnouncement)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Count(gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params).Return([]model.Post{{ID: primitive.NewObjectID(), Title: "Pool closed"}}, nil)

	res, err := f.svc.GetAll(context.Background(), params)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Posts, 1)
}

func TestPostService_Get(t *testing.T) {
	f := newFixture(t, model.KindNews)

	f.cache.EXPECT().Get(gomock.Any(), "news:get:abc", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), "abc").Return(model.Post{}, nil)

	_, err := f.svc.Get(context.Background(), "abc")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "news not found", err.Error())
}

func TestPostService_Update(t *testing.T) {
	f := newFixture(t, model.KindNews)
	oid := primitive.NewObjectID()
	current := model.Post{ID: oid, Title: "Old", ImagePath: "https://cdn.campus.lk/news/old.png"}

	tests := []struct {
		name      string
		req       dto.UpdatePostRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdatePostRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdatePostRequest{Title: "New"},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), oid.Hex()).Return(model.Post{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "new image replaces the old one",
			req:  dto.UpdatePostRequest{Title: "New", Image: pngDataURI},
			setupMock: func() {
				f.repo.EXPECT().Get(gomock.Any(), oid.Hex()).Return(current, nil)
				f.storage.EXPECT().Upload(gomock.Any(), "news", gomock.Any(), "image/png", gomock.Any()).Return("https://cdn.campus.lk/news/new.png", nil)
				f.repo.EXPECT().Update(gomock.Any(), oid.Hex(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
					assert.Equal(t, "New", fields[model.FieldTitle])
					assert.Equal(t, "https://cdn.campus.lk/news/new.png", fields[model.FieldImagePath])
					assert.NotContains(t, fields, model.FieldDescription)

					return nil
				})
				f.storage.EXPECT().Delete(gomock.Any(), "https://cdn.campus.lk/news/old.png").Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), oid.Hex()).Return(model.Post{ID: oid, Title: "New"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Update(adminContext(), tt.req, oid.Hex())

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "New", res.Title)
		})
	}
}

func TestPostService_Delete(t *testing.T) {
	f := newFixture(t, model.KindAnnouncement)
	oid := primitive.NewObjectID()

	f.repo.EXPECT().Get(gomock.Any(), oid.Hex()).Return(model.Post{ID: oid, ImagePath: "https://cdn.campus.lk/announcements/a.png"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), oid.Hex()).Return(nil)
	f.storage.EXPECT().Delete(gomock.Any(), "https://cdn.campus.lk/announcements/a.png").Return(nil)

	require.NoError(t, f.svc.Delete(adminContext(), oid.Hex()))

	f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Post{}, nil)

	err := f.svc.Delete(adminContext(), "missing")

	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
