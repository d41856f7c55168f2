package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuribeats/the-boards/utils"
)

// FilesystemBlobStore implements BlobStore using the local filesystem.
type FilesystemBlobStore struct {
	dir string
}

// NewFilesystemBlobStore creates the directory if needed.
func NewFilesystemBlobStore(dir string) (*FilesystemBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FilesystemBlobStore{dir: dir}, nil
}

// Put writes the blob atomically and returns a file:// URL.
func (f *FilesystemBlobStore) Put(ctx context.Context, data []byte, mime, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("blob-%d", time.Now().UnixNano())
	}
	if filepath.Base(filename) != filename {
		return "", utils.Errorf("invalid blob name: %s", filename)
	}
	path := filepath.Join(f.dir, filename)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", err
	}
	return "file://" + path, nil
}

// Get reads the blob behind a file:// URL.
func (f *FilesystemBlobStore) Get(ctx context.Context, url string) ([]byte, error) {
	const prefix = "file://"
	if !strings.HasPrefix(url, prefix) {
		return nil, utils.Errorf("invalid file URL: %s", url)
	}
	return os.ReadFile(url[len(prefix):])
}
