package base64_test

import (
	"sportshub/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/png", base64.GetContentType("data:image/png;base64,AAAA"))
	assert.Equal(t, "text/plain", base64.GetContentType("data:text/plain;base64,SGVsbG8="))
	assert.Empty(t, base64.GetContentType("image/png;base64,AAAA"))
	assert.Empty(t, base64.GetContentType("data:image/png,AAAA"))
	assert.Empty(t, base64.GetContentType(""))
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)

	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "Hello World", string(data))

	_, _, err = base64.Decode("not a data uri")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)

	_, _, err = base64.Decode("data:image/png;base64,***")
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", base64.Extension("image/png"))
	assert.Equal(t, ".jpg", base64.Extension("image/jpeg"))
	assert.Empty(t, base64.Extension("application/pdf"))
}
