package service

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/lib/imaging"
	"github.com/deppfellow/portfolio-api/internal/lib/storage"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadConfig() config.UploadConfig {
	return config.UploadConfig{
		Dir:             "unused",
		PublicPrefix:    "/uploads/portfolio",
		MaxFileSize:     1 << 20,
		MaxFiles:        2,
		ImageProcessing: true,
	}
}

func newUploadService(t *testing.T, processor imaging.Processor) (*UploadService, *storage.Store) {
	t.Helper()
	store, err := storage.New(t.TempDir(), "/uploads/portfolio")
	require.NoError(t, err)
	return NewUploadService(store, processor, uploadConfig()), store
}

func jpegFile(t *testing.T, name string) testutil.File {
	return testutil.File{Field: "image", Name: name, ContentType: "image/jpeg", Content: testutil.JPEG(t, 64, 48)}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
}

func TestUploadService_Single(t *testing.T) {
	svc, store := newUploadService(t, nil)

	fh := testutil.FileHeaders(t, jpegFile(t, "me.jpg"))[0]
	file, err := svc.Single(context.Background(), fh)
	require.NoError(t, err)

	assert.Equal(t, "me.jpg", file.OriginalName)
	assert.Equal(t, "/uploads/portfolio/"+file.Filename, file.URL)
	assert.Equal(t, fh.Size, file.Size)
	assert.True(t, store.Exists(file.Filename))
}

func TestUploadService_RejectsNonImages(t *testing.T) {
	svc, _ := newUploadService(t, nil)

	fh := testutil.FileHeaders(t, testutil.File{Field: "image", Name: "notes.txt", ContentType: "text/plain", Content: []byte("hi")})[0]
	_, err := svc.Single(context.Background(), fh)
	requireStatus(t, err, http.StatusBadRequest)

	// extension is enough when the client sends a generic type
	fh = testutil.FileHeaders(t, testutil.File{Field: "image", Name: "photo.WEBP", ContentType: "application/octet-stream", Content: []byte("x")})[0]
	_, err = svc.Single(context.Background(), fh)
	assert.NoError(t, err)

	_, err = svc.Single(context.Background(), nil)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUploadService_TooLarge(t *testing.T) {
	svc, _ := newUploadService(t, nil)

	big := testutil.File{Field: "image", Name: "big.png", ContentType: "image/png", Content: []byte(strings.Repeat("x", 1<<20+1))}
	_, err := svc.Single(context.Background(), testutil.FileHeaders(t, big)[0])
	requireStatus(t, err, http.StatusRequestEntityTooLarge)
}

func TestUploadService_Multiple(t *testing.T) {
	svc, store := newUploadService(t, nil)
	ctx := context.Background()

	files, err := svc.Multiple(ctx, testutil.FileHeaders(t,
		testutil.File{Field: "images", Name: "a.png", ContentType: "image/png", Content: []byte("a")},
		testutil.File{Field: "images", Name: "b.png", ContentType: "image/png", Content: []byte("b")},
	))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.png", files[0].OriginalName)
	assert.True(t, store.Exists(files[1].Filename))

	_, err = svc.Multiple(ctx, nil)
	requireStatus(t, err, http.StatusBadRequest)

	three := testutil.FileHeaders(t,
		testutil.File{Field: "images", Name: "a.png", ContentType: "image/png", Content: []byte("a")},
		testutil.File{Field: "images", Name: "b.png", ContentType: "image/png", Content: []byte("b")},
		testutil.File{Field: "images", Name: "c.png", ContentType: "image/png", Content: []byte("c")},
	)
	_, err = svc.Multiple(ctx, three)
	requireStatus(t, err, http.StatusBadRequest)

	// one bad file rejects the batch before anything is written
	entries, _ := os.ReadDir(filepath.Dir(mustPath(t, store, files[0].Filename)))
	before := len(entries)
	_, err = svc.Multiple(ctx, testutil.FileHeaders(t,
		testutil.File{Field: "images", Name: "a.png", ContentType: "image/png", Content: []byte("a")},
		testutil.File{Field: "images", Name: "b.exe", ContentType: "application/x-msdownload", Content: []byte("b")},
	))
	requireStatus(t, err, http.StatusBadRequest)
	entries, _ = os.ReadDir(filepath.Dir(mustPath(t, store, files[0].Filename)))
	assert.Len(t, entries, before)
}

func mustPath(t *testing.T, store *storage.Store, name string) string {
	t.Helper()
	p, err := store.Path(name)
	require.NoError(t, err)
	return p
}

func TestUploadService_RoundedProcessed(t *testing.T) {
	svc, store := newUploadService(t, imaging.New())
	assert.False(t, svc.Degraded())

	out, err := svc.Rounded(context.Background(), testutil.FileHeaders(t, jpegFile(t, "avatar.jpg"))[0])
	require.NoError(t, err)

	assert.Equal(t, model.ModeProcessed, out.Mode)
	assert.False(t, out.Degraded)
	assert.Empty(t, out.Failed)
	assert.Equal(t, "avatar.jpg", out.OriginalName)
	require.Len(t, out.Sizes, 4)
	require.NotNil(t, out.Rounded)

	filename := strings.TrimPrefix(out.Original, "/uploads/portfolio/")
	for _, size := range imaging.Sizes {
		v := out.Sizes[size.Name]
		assert.Equal(t, size.Width, v.Width)
		assert.Equal(t, "/uploads/portfolio/"+imaging.VariantName(size.Name, filename), v.URL)
		assert.True(t, store.Exists(imaging.VariantName(size.Name, filename)))
	}
	assert.True(t, store.Exists(imaging.RoundedName(filename)))
}

func TestUploadService_RoundedOneSizeFails(t *testing.T) {
	flaky := &testutil.FlakyProcessor{Next: imaging.New(), FailWidth: map[int]bool{600: true}}
	svc, _ := newUploadService(t, flaky)

	out, err := svc.Rounded(context.Background(), testutil.FileHeaders(t, jpegFile(t, "avatar.jpg"))[0])
	require.NoError(t, err)

	assert.Equal(t, []string{"medium"}, out.Failed)
	assert.Len(t, out.Sizes, 3)
	assert.NotContains(t, out.Sizes, "medium")
	assert.Contains(t, out.Sizes, "thumbnail")
	assert.Contains(t, out.Sizes, "small")
	assert.Contains(t, out.Sizes, "large")
	assert.NotNil(t, out.Rounded)
	assert.False(t, out.Degraded)
}

func TestUploadService_RoundedDegraded(t *testing.T) {
	svc, _ := newUploadService(t, nil)
	assert.True(t, svc.Degraded())

	out, err := svc.Rounded(context.Background(), testutil.FileHeaders(t, jpegFile(t, "avatar.jpg"))[0])
	require.NoError(t, err)

	assert.True(t, out.Degraded)
	assert.Equal(t, model.ModeDescriptive, out.Mode)
	require.NotNil(t, out.Rounded)
	assert.Equal(t, out.Original, out.Rounded.URL)
	assert.Equal(t, "50%", out.Rounded.Style["borderRadius"])
	for _, v := range out.Sizes {
		assert.Equal(t, out.Original, v.URL)
	}
}

func TestUploadService_RoundedSimpleNeverDegraded(t *testing.T) {
	svc, store := newUploadService(t, imaging.New())

	out, err := svc.RoundedSimple(context.Background(), testutil.FileHeaders(t, jpegFile(t, "avatar.jpg"))[0])
	require.NoError(t, err)

	assert.False(t, out.Degraded)
	assert.Equal(t, model.ModeDescriptive, out.Mode)
	assert.Len(t, out.Sizes, 4)

	filename := strings.TrimPrefix(out.Original, "/uploads/portfolio/")
	assert.False(t, store.Exists(imaging.VariantName("small", filename)))
}

func TestUploadService_ImageURLs(t *testing.T) {
	svc, _ := newUploadService(t, nil)
	ctx := context.Background()

	file, err := svc.Single(ctx, testutil.FileHeaders(t, jpegFile(t, "a.jpg"))[0])
	require.NoError(t, err)

	urls, err := svc.ImageURLs(ctx, file.Filename)
	require.NoError(t, err)
	assert.Equal(t, file.URL, urls.Original)
	assert.Equal(t, "/uploads/portfolio/"+imaging.RoundedName(file.Filename), urls.Rounded)
	assert.Equal(t, "/uploads/portfolio/large_"+file.Filename, urls.Sizes["large"])

	_, err = svc.ImageURLs(ctx, "missing.jpg")
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.ImageURLs(ctx, "../config.go")
	requireStatus(t, err, http.StatusNotFound)
}

func TestNewImageProcessor(t *testing.T) {
	logger := zerolog.Nop()
	cfg := uploadConfig()

	assert.NotNil(t, NewImageProcessor(cfg, t.TempDir(), &logger))
	assert.Nil(t, NewImageProcessor(cfg, filepath.Join(t.TempDir(), "missing"), &logger))

	cfg.ImageProcessing = false
	assert.Nil(t, NewImageProcessor(cfg, t.TempDir(), &logger))
}
