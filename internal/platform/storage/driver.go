package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bucket is a logical object-storage bucket, mapped to a path prefix under
// the configured backend.
type Bucket string

const (
	BucketAvatars            Bucket = "avatars"
	BucketPaymentProofs      Bucket = "payment-proofs"
	BucketSupportAttachments Bucket = "support-attachments"
)

// Driver abstracts the object-storage backend (local disk or S3).
type Driver interface {
	// Upload stores the file under path and returns the storage path and
	// its public URL.
	Upload(ctx context.Context, file io.Reader, path string) (storagePath string, publicURL string, err error)

	Delete(ctx context.Context, path string) error

	GetPublicURL(path string) string

	Exists(ctx context.Context, path string) (bool, error)
}

// ObjectPath builds the conventional upload path
// {bucket}/{ownerID}/{scopeID}/{timestamp}-{random}.{ext}. scopeID is the
// ticket id for support attachments and may be empty for avatars.
func ObjectPath(bucket Bucket, ownerID, scopeID, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	parts := []string{string(bucket), ownerID}
	if scopeID != "" {
		parts = append(parts, scopeID)
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

// contentType returns the MIME type based on file extension.
func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
