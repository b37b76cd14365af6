package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectPath_Layout(t *testing.T) {
	p := ObjectPath(BucketPaymentProofs, "owner-1", "wd-9", "comprovante.PDF")
	parts := strings.Split(p, "/")
	require.Len(t, parts, 4)
	require.Equal(t, "payment-proofs", parts[0])
	require.Equal(t, "owner-1", parts[1])
	require.Equal(t, "wd-9", parts[2])
	require.True(t, strings.HasSuffix(parts[3], ".PDF"))
}

func TestObjectPath_EmptyScopeAndExtension(t *testing.T) {
	p := ObjectPath(BucketAvatars, "owner-1", "", "noext")
	parts := strings.Split(p, "/")
	require.Len(t, parts, 3)
	require.Equal(t, "avatars", parts[0])
	require.True(t, strings.HasSuffix(parts[2], ".bin"))
}

func TestObjectPath_Unique(t *testing.T) {
	a := ObjectPath(BucketAvatars, "o", "", "a.png")
	b := ObjectPath(BucketAvatars, "o", "", "a.png")
	require.NotEqual(t, a, b)
}

func TestContentType(t *testing.T) {
	require.Equal(t, "image/jpeg", contentType("x/y/photo.JPG"))
	require.Equal(t, "application/pdf", contentType("proof.pdf"))
	require.Equal(t, "application/octet-stream", contentType("data.xyz"))
}

func TestLocalDriver_UploadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := NewLocalDriver(dir, "https://cdn.example.com/uploads")

	path := "avatars/u1/test.png"
	storagePath, url, err := d.Upload(context.Background(), strings.NewReader("payload"), path)
	require.NoError(t, err)
	require.Equal(t, path, storagePath)
	require.Equal(t, "https://cdn.example.com/uploads/avatars/u1/test.png", url)

	f, err := os.Open(filepath.Join(dir, path))
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))

	ok, err := d.Exists(context.Background(), path)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.Delete(context.Background(), path))
	ok, err = d.Exists(context.Background(), path)
	require.NoError(t, err)
	require.False(t, ok)
}
