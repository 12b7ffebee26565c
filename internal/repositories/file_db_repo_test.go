package repositories

import (
	"context"
	"testing"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, repo FileRepository, name, owner string, version uint) *models.File {
	t.Helper()
	f := &models.File{FileName: name, UploadedBy: owner, Version: version, URL: "http://files.test/" + name}
	require.NoError(t, repo.Create(context.Background(), f))
	return f
}

func TestFindMaxVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))

	v, err := repo.FindMaxVersion(ctx, "plan.txt", "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, v)

	for _, version := range []uint{1, 2, 5} {
		createFile(t, repo, "plan.txt", "a@x.com", version)
	}
	createFile(t, repo, "plan.txt", "b@x.com", 9)
	createFile(t, repo, "other.txt", "a@x.com", 7)

	v, err = repo.FindMaxVersion(ctx, "plan.txt", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(5), v)
}

func TestFileDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))
	f := createFile(t, repo, "plan.txt", "a@x.com", 1)

	require.NoError(t, repo.DeleteByID(ctx, f.ID))
	_, err := repo.FindByID(ctx, f.ID)
	assert.ErrorIs(t, err, xerr.ErrFileNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, f.ID), xerr.ErrFileNotFound)
}

func TestFileListFilterAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))
	createFile(t, repo, "100%_done.txt", "a@x.com", 1)
	createFile(t, repo, "100abc.txt", "a@x.com", 1)
	createFile(t, repo, "notes.txt", "b@x.com", 1)

	files, err := repo.List(ctx, models.FileFilter{UploadedBy: "a@x.com"}, Order{Column: "filename"}, 0, 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "100%_done.txt", files[0].FileName)

	// % 和 _ 按字面量匹配
	filter := models.FileFilter{FileName: "100%_"}
	files, err = repo.List(ctx, filter, DefaultOrder, 0, 0)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "100%_done.txt", files[0].FileName)
	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	files, err = repo.List(ctx, models.FileFilter{}, DefaultOrder, 2, 10)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
