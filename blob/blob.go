// Package blob stores feed archives on the local filesystem or in S3.
package blob

import (
	"context"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/utils"
)

// BlobStore is the interface for pluggable blob storage backends.
type BlobStore interface {
	Put(ctx context.Context, data []byte, mime, filename string) (url string, err error)
	Get(ctx context.Context, url string) ([]byte, error)
}

// NewDefaultBlobStore returns a BlobStore for cfg. A nil config or empty
// driver uses the filesystem under config.DefaultBlobDir.
func NewDefaultBlobStore(ctx context.Context, cfg *config.BlobConfig) (BlobStore, error) {
	if cfg == nil || cfg.Driver == "" || cfg.Driver == constants.BlobDriverFilesystem {
		dir := config.DefaultBlobDir
		if cfg != nil && cfg.Directory != "" {
			dir = cfg.Directory
		}
		return NewFilesystemBlobStore(dir)
	}
	if cfg.Driver == constants.BlobDriverS3 {
		if cfg.Bucket == "" || cfg.Region == "" {
			return nil, utils.Errorf("s3 driver requires bucket and region")
		}
		return NewS3BlobStore(ctx, cfg.Bucket, cfg.Region)
	}
	return nil, utils.Errorf("unsupported blob driver: %s", cfg.Driver)
}
