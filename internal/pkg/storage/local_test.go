package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorageService(afero.NewMemMapFs(), "/srv", "https://cdn.example.com/")

	exists, err := s.IsBucketExist(ctx, "uploads")
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, s.MakeBucket(ctx, "uploads"))
	exists, err = s.IsBucketExist(ctx, "uploads")
	require.NoError(t, err)
	assert.True(t, exists)

	res, err := s.PutObject(ctx, "uploads", "a@x.com/doc.pdf_v1_1.pdf", strings.NewReader("pdf!"), 4, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Size)

	obj, err := s.GetObject(ctx, "uploads", "a@x.com/doc.pdf_v1_1.pdf")
	require.NoError(t, err)
	body, _ := io.ReadAll(obj.Reader)
	obj.Reader.Close()
	assert.Equal(t, "pdf!", string(body))
	assert.Equal(t, "application/pdf", obj.MimeType)

	require.NoError(t, s.RemoveObject(ctx, "uploads", "a@x.com/doc.pdf_v1_1.pdf"))
	_, err = s.GetObject(ctx, "uploads", "a@x.com/doc.pdf_v1_1.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	// 重复删除同一个对象不报错
	assert.NoError(t, s.RemoveObject(ctx, "uploads", "a@x.com/doc.pdf_v1_1.pdf"))
}

func TestLocalStorageRefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorageService(afero.NewMemMapFs(), "/srv", "")

	_, err := s.PutObject(ctx, "b", "k.txt", strings.NewReader("1"), 1, "text/plain")
	require.NoError(t, err)
	_, err = s.PutObject(ctx, "b", "k.txt", strings.NewReader("2"), 1, "text/plain")
	assert.Error(t, err)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s := NewLocalStorageService(afero.NewMemMapFs(), "/srv", "")
	_, err := s.PutObject(context.Background(), "b", "../../etc/passwd", strings.NewReader("x"), 1, "")
	assert.Error(t, err)

	_, err = s.PutObject(context.Background(), "b", "a@x.com/notes..old_v1_1.txt", strings.NewReader("x"), 1, "")
	assert.NoError(t, err)
}

func TestGetObjectURL(t *testing.T) {
	s := NewLocalStorageService(afero.NewMemMapFs(), "/srv", "https://cdn.example.com/")
	assert.Equal(t,
		"https://cdn.example.com/uploads/a@x.com/my%20file_v1_1.txt",
		s.GetObjectURL("uploads", "a@x.com/my file_v1_1.txt"))

	def := NewLocalStorageService(afero.NewMemMapFs(), "/srv", "")
	assert.Equal(t, "/objects/uploads/x.txt", def.GetObjectURL("uploads", "x.txt"))
}

func TestAliyunObjectURL(t *testing.T) {
	s := &AliyunOSSStorageService{cfg: &configForTest}
	assert.Equal(t, "https://bucket.oss-cn-hangzhou.aliyuncs.com/a/b.txt", s.GetObjectURL("bucket", "a/b.txt"))
}

var configForTest = config.AliyunOSSConfig{Endpoint: "https://oss-cn-hangzhou.aliyuncs.com"}
