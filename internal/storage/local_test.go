package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "user-1/order-1/doc.pdf", strings.NewReader("pdf content"), "application/pdf")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "user-1/order-1/doc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, "user-1/order-1/doc.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf content", string(data))

	size, err := s.GetSize(ctx, "user-1/order-1/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("pdf content")), size)
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "user-1/order-1/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/user-1/order-1/doc.pdf", url)
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a/b/c.txt", strings.NewReader("x"), "text/plain"))
	require.NoError(t, s.Delete(ctx, "a/b/c.txt"))

	exists, err := s.Exists(ctx, "a/b/c.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewStorage_UnknownTypeFails(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)
}
