package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDriver stores objects on the local filesystem, serving them from
// publicBase (default /uploads). Used in dev and single-node deployments.
type LocalDriver struct {
	basePath   string
	publicBase string
}

func NewLocalDriver(basePath, publicBase string) *LocalDriver {
	if basePath == "" {
		basePath = "./uploads"
	}
	if publicBase == "" {
		publicBase = "/uploads"
	}
	return &LocalDriver{basePath: basePath, publicBase: strings.TrimSuffix(publicBase, "/")}
}

func (d *LocalDriver) Upload(ctx context.Context, file io.Reader, path string) (string, string, error) {
	fullPath := filepath.Join(d.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, d.GetPublicURL(path), nil
}

func (d *LocalDriver) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(d.basePath, path)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (d *LocalDriver) GetPublicURL(path string) string {
	return d.publicBase + "/" + strings.TrimPrefix(path, "/")
}

func (d *LocalDriver) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(d.basePath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file existence: %w", err)
	}
	return true, nil
}
