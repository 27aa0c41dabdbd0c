// Package storage owns the lifecycle of uploaded product images: the
// resize/re-encode pipeline and the stores the resulting files land in.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultImagePath is the sentinel used when a product has no image. The file
// it points at is a static asset and must never be deleted.
const DefaultImagePath = "/uploads/default.png"

// ImageStore is implemented by the disk store and the S3 store. Save returns
// the public path the stored file is reachable under; that path is what gets
// persisted on the Product row and later handed back to Remove.
type ImageStore interface {
	Save(name string, data []byte, contentType string) (string, error)
	Remove(publicPath string) error
}

// DiskStore writes under a local directory that is served statically by the
// HTTP server.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (d *DiskStore) Save(name string, data []byte, contentType string) (string, error) {
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(d.Dir, name), data, 0o644); err != nil {
		return "", err
	}
	return d.BaseURL + "/" + name, nil
}

func (d *DiskStore) Remove(publicPath string) error {
	return os.Remove(filepath.Join(d.Dir, path.Base(publicPath)))
}
