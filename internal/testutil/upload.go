package testutil

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"

	imgproc "github.com/deppfellow/portfolio-api/internal/lib/imaging"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// File is one part of a multipart upload.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// MultipartBody encodes files as a multipart/form-data body.
func MultipartBody(t *testing.T, files ...File) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// FileHeaders parses files back into headers, as a handler would see them.
func FileHeaders(t *testing.T, files ...File) []*multipart.FileHeader {
	t.Helper()
	body, contentType := MultipartBody(t, files...)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	var out []*multipart.FileHeader
	seen := map[string]bool{}
	for _, f := range files {
		if !seen[f.Field] {
			seen[f.Field] = true
			out = append(out, form.File[f.Field]...)
		}
	}
	return out
}

// JPEG returns an encoded w x h image.
func JPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 30, G: 120, B: 200, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

// FlakyProcessor fails Resize for the listed widths.
type FlakyProcessor struct {
	Next      imgproc.Processor
	FailWidth map[int]bool
}

func (p *FlakyProcessor) Resize(ctx context.Context, src, dst string, width int) error {
	if p.FailWidth[width] {
		return errors.New("encoder crashed")
	}
	return p.Next.Resize(ctx, src, dst, width)
}

func (p *FlakyProcessor) Round(ctx context.Context, src, dst string, size int) error {
	return p.Next.Round(ctx, src, dst, size)
}
