package setup

import (
	"context"
	"testing"

	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnsureBucketIsIdempotent(t *testing.T) {
	logger.SetLogger(zap.NewNop())
	ctx := context.Background()
	svc := storage.NewLocalStorageService(afero.NewMemMapFs(), "/data", "")

	require.NoError(t, EnsureBucket(ctx, svc, "uploads"))
	require.NoError(t, EnsureBucket(ctx, svc, "uploads"))
	ok, err := svc.IsBucketExist(ctx, "uploads")
	require.NoError(t, err)
	assert.True(t, ok)
}
