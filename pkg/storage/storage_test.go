package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shopconsole.io/configs"
	"shopconsole.io/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Logo.PNG", "logo.png"},
		{"my summer photo (1).jpg", "my-summer-photo-1-.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\pic.gif`, "pic.gif"},
		{"...", "file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), tt.in)
	}

	long := strings.Repeat("a", 200) + ".webp"
	got := SanitizeName(long)
	assert.Len(t, got, maxNameLength)
	assert.True(t, strings.HasSuffix(got, ".webp"))

	longExt := "a." + strings.Repeat("x", 100)
	require.NotPanics(t, func() { got = SanitizeName(longExt) })
	assert.Len(t, got, maxNameLength)
	assert.True(t, strings.HasPrefix(got, "a.xxx"))
}

func TestNewKey_Unique(t *testing.T) {
	a := NewKey("logo.png")
	b := NewKey("logo.png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-logo.png"))
}

func TestCheckUpload(t *testing.T) {
	require.NoError(t, CheckUpload("navbarLogo", "logo.svg", 100, 1024))

	err := CheckUpload("navbarLogo", "script.exe", 100, 1024)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	err = CheckUpload("heroImages", "big.jpg", 6<<20, 5<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5.0 MiB")
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "1-abc-logo.png", KeyFromURL("http://localhost:5000/uploads/1-abc-logo.png"))
	assert.Equal(t, "plain", KeyFromURL("plain"))
}

func TestLocal_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewLocal(dir, "http://localhost:5000/uploads/")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := backend.Save(ctx, "k1-logo.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/k1-logo.png", url)

	raw, err := os.ReadFile(filepath.Join(dir, "k1-logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(raw))

	_, err = backend.Save(ctx, "k1-logo.png", strings.NewReader("again"), 5, "image/png")
	assert.Error(t, err, "existing keys are never overwritten")

	require.NoError(t, backend.Delete(ctx, "k1-logo.png"))
	_, err = os.Stat(filepath.Join(dir, "k1-logo.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, backend.Delete(ctx, "k1-logo.png"), "deleting twice is fine")
}

func TestLocal_RejectsPathKeys(t *testing.T) {
	backend, err := NewLocal(t.TempDir(), "http://x/uploads")
	require.NoError(t, err)

	_, err = backend.Save(context.Background(), "../escape.png", strings.NewReader("x"), 1, "")
	assert.Error(t, err)
	assert.Error(t, backend.Delete(context.Background(), "a/b.png"))
}

func TestS3PublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		s3PublicURL(configs.StorageConfig{S3PublicURL: "https://cdn.example.com/"}, "eu-central-1"))
	assert.Equal(t, "http://minio:9000/assets",
		s3PublicURL(configs.StorageConfig{S3Endpoint: "http://minio:9000", S3Bucket: "assets"}, ""))
	assert.Equal(t, "https://assets.s3.eu-central-1.amazonaws.com",
		s3PublicURL(configs.StorageConfig{S3Bucket: "assets"}, "eu-central-1"))
}
