package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/voltgrid/voltgrid/internal/config"
	storagedomain "github.com/voltgrid/voltgrid/internal/providers/storage/domain"
	"go.uber.org/zap"
)

type localProvider struct {
	dir string
	log *zap.Logger
}

// NewLocal stores uploads under the configured directory. Object names get a
// uuid suffix so repeated uploads of the same filename never collide.
func NewLocal(cfg config.Config, log *zap.Logger) storagedomain.Provider {
	return &localProvider{
		dir: cfg.StorageDir,
		log: log.Named("storage.local"),
	}
}

func (p *localProvider) Upload(ctx context.Context, fileName string, content []byte) (*storagedomain.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, storagedomain.ErrEmptyContent
	}

	base := filepath.Base(strings.TrimSpace(fileName))
	ext := filepath.Ext(base)
	object := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(base, ext), uuid.NewString(), ext)
	path := filepath.Join(p.dir, object)

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, err
	}

	p.log.Debug("stored payment proof", zap.String("path", path))
	return &storagedomain.UploadResult{
		URL:  "file://" + path,
		Path: path,
	}, nil
}
