package storage

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/voltgrid/voltgrid/internal/config"
	storagedomain "github.com/voltgrid/voltgrid/internal/providers/storage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalUpload(t *testing.T) {
	dir := t.TempDir()
	provider := NewLocal(config.Config{StorageDir: dir}, zap.NewNop())

	result, err := provider.Upload(context.Background(), "receipt.pdf", []byte("proof"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "file://"))
	assert.True(t, strings.HasPrefix(result.Path, dir))
	assert.True(t, strings.HasSuffix(result.Path, ".pdf"))

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("proof"), content)
}

func TestLocalUploadUniqueObjectNames(t *testing.T) {
	dir := t.TempDir()
	provider := NewLocal(config.Config{StorageDir: dir}, zap.NewNop())
	ctx := context.Background()

	first, err := provider.Upload(ctx, "receipt.pdf", []byte("one"))
	require.NoError(t, err)
	second, err := provider.Upload(ctx, "receipt.pdf", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestLocalUploadRejectsEmptyContent(t *testing.T) {
	provider := NewLocal(config.Config{StorageDir: t.TempDir()}, zap.NewNop())

	_, err := provider.Upload(context.Background(), "receipt.pdf", nil)
	assert.ErrorIs(t, err, storagedomain.ErrEmptyContent)
}
