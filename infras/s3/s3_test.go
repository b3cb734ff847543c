package s3_test

import (
	"context"
	"sportshub/infras/s3"
	"sportshub/infras/s3/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.campus.lk/news/abc.png", want: "news/abc.png"},
		{name: "bucket endpoint", url: "https://s3.local/sportshub/sports/x.jpg", want: "sports/x.jpg"},
		{name: "foreign url", url: "https://elsewhere.com/a.png", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectKey("https://cdn.campus.lk/", "https://s3.local", "sportshub", tt.url))
		})
	}
}

func TestUploadDataURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)

	storage.EXPECT().
		Upload(gomock.Any(), "news", gomock.Any(), "image/png", []byte("png")).
		DoAndReturn(func(_ context.Context, _, fileName, _ string, _ []byte) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, ".png"))

			return "https://cdn.campus.lk/news/" + fileName, nil
		})

	url, err := s3.UploadDataURI(context.Background(), storage, "news", "data:image/png;base64,cG5n")
	require.NoError(t, err)
	assert.Contains(t, url, "https://cdn.campus.lk/news/")

	_, err = s3.UploadDataURI(context.Background(), storage, "news", "not a data uri")
	assert.Error(t, err)
}
