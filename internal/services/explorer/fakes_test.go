package explorer

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/storage"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/repositories"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const testBucket = "uploads"

func init() {
	logger.SetLogger(zap.NewNop())
}

type memFileRepo struct {
	files     map[uint64]models.File
	nextID    uint64
	createErr error
	deleteErr error
	maxErr    error
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: make(map[uint64]models.File)}
}

func (r *memFileRepo) Create(_ context.Context, file *models.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	file.ID = r.nextID
	file.CreatedAt = time.Now()
	r.files[file.ID] = *file
	return nil
}

func (r *memFileRepo) FindByID(_ context.Context, id uint64) (*models.File, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, xerr.ErrFileNotFound
	}
	return &f, nil
}

func (r *memFileRepo) FindMaxVersion(_ context.Context, fileName, uploadedBy string) (uint, error) {
	if r.maxErr != nil {
		return 0, r.maxErr
	}
	var max uint
	for _, f := range r.files {
		if f.FileName == fileName && f.UploadedBy == uploadedBy && f.Version > max {
			max = f.Version
		}
	}
	return max, nil
}

func (r *memFileRepo) List(_ context.Context, filter models.FileFilter, _ repositories.Order, offset, limit int) ([]models.File, error) {
	var out []models.File
	for id := uint64(1); id <= r.nextID; id++ {
		f, ok := r.files[id]
		if !ok || (filter.UploadedBy != "" && f.UploadedBy != filter.UploadedBy) {
			continue
		}
		out = append(out, f)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memFileRepo) Count(ctx context.Context, filter models.FileFilter) (int64, error) {
	all, _ := r.List(ctx, filter, repositories.DefaultOrder, 0, 0)
	return int64(len(all)), nil
}

func (r *memFileRepo) DeleteByID(_ context.Context, id uint64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.files[id]; !ok {
		return xerr.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

type recordedLog struct {
	Action, FileName, UserEmail string
}

type fakeRecorder struct {
	logs []recordedLog
	err  error
}

func (f *fakeRecorder) Record(_ context.Context, action, fileName, userEmail string) error {
	if f.err != nil {
		return f.err
	}
	f.logs = append(f.logs, recordedLog{action, fileName, userEmail})
	return nil
}

func (f *fakeRecorder) Search(context.Context, string, int) ([]models.FileLog, error) {
	return nil, nil
}

// flakyStorage 在本地存储外包一层, 可注入写入和删除失败
type flakyStorage struct {
	storage.StorageService
	putErr    error
	removeErr error
	removed   []string
}

func newFlakyStorage() *flakyStorage {
	return &flakyStorage{StorageService: storage.NewLocalStorageService(afero.NewMemMapFs(), "/data", "http://files.test")}
}

func (s *flakyStorage) PutObject(ctx context.Context, bucket, object string, r io.Reader, size int64, contentType string) (storage.PutObjectResult, error) {
	if s.putErr != nil {
		return storage.PutObjectResult{}, s.putErr
	}
	return s.StorageService.PutObject(ctx, bucket, object, r, size, contentType)
}

func (s *flakyStorage) RemoveObject(ctx context.Context, bucket, object string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, object)
	return s.StorageService.RemoveObject(ctx, bucket, object)
}

var errBoom = errors.New("boom")
