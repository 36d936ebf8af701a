package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/deppfellow/portfolio-api/internal/config"
	"github.com/deppfellow/portfolio-api/internal/errs"
	"github.com/deppfellow/portfolio-api/internal/lib/imaging"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// variantWorkers bounds concurrent variant encodes per upload.
const variantWorkers = 3

var imageExtension = regexp.MustCompile(`(?i)\.(jpeg|jpg|png|gif|webp)$`)

// FileStore keeps uploaded files and maps their names to public URLs.
type FileStore interface {
	Save(src io.Reader, originalName string) (model.UploadedFile, error)
	Path(name string) (string, error)
	URL(name string) string
	Exists(name string) bool
	Remove(name string) error
}

type UploadService struct {
	store       FileStore
	processor   imaging.Processor
	maxFileSize int64
	maxFiles    int
}

// NewUploadService builds the upload bridge. A nil processor selects
// descriptive mode for every rounded upload.
func NewUploadService(store FileStore, processor imaging.Processor, cfg config.UploadConfig) *UploadService {
	return &UploadService{
		store:       store,
		processor:   processor,
		maxFileSize: cfg.MaxFileSize,
		maxFiles:    cfg.MaxFiles,
	}
}

// NewImageProcessor returns the pixel processor when image processing is
// enabled and the start-up probe passes, nil otherwise.
func NewImageProcessor(cfg config.UploadConfig, dir string, logger *zerolog.Logger) imaging.Processor {
	if !cfg.ImageProcessing {
		logger.Info().Msg("image processing disabled, rounded uploads use descriptive variants")
		return nil
	}
	if err := imaging.Probe(dir); err != nil {
		logger.Warn().Err(err).Msg("image processing unavailable, rounded uploads use descriptive variants")
		return nil
	}
	return imaging.New()
}

// Degraded reports whether rounded uploads fall back to descriptive mode.
func (s *UploadService) Degraded() bool {
	return s.processor == nil
}

// Single stores one image.
func (s *UploadService) Single(ctx context.Context, fh *multipart.FileHeader) (model.UploadedFile, error) {
	if err := s.check(fh); err != nil {
		return model.UploadedFile{}, err
	}
	return s.save(ctx, fh)
}

// Multiple stores every image or none of them.
func (s *UploadService) Multiple(ctx context.Context, files []*multipart.FileHeader) ([]model.UploadedFile, error) {
	if len(files) == 0 {
		return nil, errs.NewBadRequestError("No files uploaded", true, nil, nil)
	}
	if len(files) > s.maxFiles {
		return nil, errs.NewBadRequestError(fmt.Sprintf("Too many files, at most %d are allowed", s.maxFiles), true, nil, nil)
	}
	for _, fh := range files {
		if err := s.check(fh); err != nil {
			return nil, err
		}
	}

	saved := make([]model.UploadedFile, 0, len(files))
	for _, fh := range files {
		file, err := s.save(ctx, fh)
		if err != nil {
			for _, f := range saved {
				if rmErr := s.store.Remove(f.Filename); rmErr != nil {
					zerolog.Ctx(ctx).Warn().Err(rmErr).Str("filename", f.Filename).Msg("failed to remove partial upload")
				}
			}
			return nil, err
		}
		saved = append(saved, file)
	}
	return saved, nil
}

// Rounded stores the image and derives the circular artifact plus one
// square variant per size. A variant that cannot be produced is listed in
// Failed and left out of Sizes.
func (s *UploadService) Rounded(ctx context.Context, fh *multipart.FileHeader) (model.RoundedUpload, error) {
	if err := s.check(fh); err != nil {
		return model.RoundedUpload{}, err
	}
	file, err := s.save(ctx, fh)
	if err != nil {
		return model.RoundedUpload{}, err
	}

	if s.processor == nil {
		out := describe(file)
		out.Degraded = true
		return out, nil
	}
	return s.process(ctx, file)
}

// RoundedSimple stores the image and returns style-only variants.
func (s *UploadService) RoundedSimple(ctx context.Context, fh *multipart.FileHeader) (model.RoundedUpload, error) {
	if err := s.check(fh); err != nil {
		return model.RoundedUpload{}, err
	}
	file, err := s.save(ctx, fh)
	if err != nil {
		return model.RoundedUpload{}, err
	}
	return describe(file), nil
}

// ImageURLs returns the derived paths of a stored image.
func (s *UploadService) ImageURLs(_ context.Context, filename string) (model.ImageURLs, error) {
	if !s.store.Exists(filename) {
		return model.ImageURLs{}, errs.NewNotFoundError("Image not found", true, nil)
	}

	sizes := make(map[string]string, len(imaging.Sizes))
	for _, size := range imaging.Sizes {
		sizes[size.Name] = s.store.URL(imaging.VariantName(size.Name, filename))
	}

	return model.ImageURLs{
		Original: s.store.URL(filename),
		Rounded:  s.store.URL(imaging.RoundedName(filename)),
		Sizes:    sizes,
	}, nil
}

func (s *UploadService) process(ctx context.Context, file model.UploadedFile) (model.RoundedUpload, error) {
	src, err := s.store.Path(file.Filename)
	if err != nil {
		return model.RoundedUpload{}, err
	}

	out := model.RoundedUpload{
		Original:     file.URL,
		Sizes:        make(map[string]model.Variant, len(imaging.Sizes)),
		Failed:       []string{},
		OriginalName: file.OriginalName,
		FileSize:     file.Size,
		Mode:         model.ModeProcessed,
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(variantWorkers)

	fail := func(name string, err error) {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("filename", file.Filename).
			Str("variant", name).
			Msg("failed to produce image variant")
		mu.Lock()
		out.Failed = append(out.Failed, name)
		mu.Unlock()
	}

	g.Go(func() error {
		name := imaging.RoundedName(file.Filename)
		dst, err := s.store.Path(name)
		if err == nil {
			err = s.processor.Round(ctx, src, dst, imaging.RoundedSize)
		}
		if err != nil {
			fail("rounded", err)
			return nil
		}
		mu.Lock()
		out.Rounded = &model.Variant{URL: s.store.URL(name), Width: imaging.RoundedSize, Height: imaging.RoundedSize}
		mu.Unlock()
		return nil
	})

	for _, size := range imaging.Sizes {
		g.Go(func() error {
			name := imaging.VariantName(size.Name, file.Filename)
			dst, err := s.store.Path(name)
			if err == nil {
				err = s.processor.Resize(ctx, src, dst, size.Width)
			}
			if err != nil {
				fail(size.Name, err)
				return nil
			}
			mu.Lock()
			out.Sizes[size.Name] = model.Variant{URL: s.store.URL(name), Width: size.Width, Height: size.Width}
			mu.Unlock()
			return nil
		})
	}

	// Variant goroutines never return an error.
	_ = g.Wait()

	slices.SortFunc(out.Failed, func(a, b string) int { return variantRank(a) - variantRank(b) })
	return out, nil
}

// variantRank orders failures as rounded first, then by the size table.
func variantRank(name string) int {
	for i, size := range imaging.Sizes {
		if size.Name == name {
			return i + 1
		}
	}
	return 0
}

func describe(file model.UploadedFile) model.RoundedUpload {
	rounded := imaging.DescribeRounded(file.URL, imaging.RoundedSize)
	return model.RoundedUpload{
		Original:     file.URL,
		Rounded:      &rounded,
		Sizes:        imaging.DescribeSizes(file.URL),
		Failed:       []string{},
		OriginalName: file.OriginalName,
		FileSize:     file.Size,
		Mode:         model.ModeDescriptive,
	}
}

func (s *UploadService) check(fh *multipart.FileHeader) error {
	if fh == nil {
		return errs.NewBadRequestError("No file uploaded", true, nil, nil)
	}
	if fh.Size > s.maxFileSize {
		return errs.NewPayloadTooLargeError(fmt.Sprintf("File %s exceeds the %d byte limit", fh.Filename, s.maxFileSize))
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") && !imageExtension.MatchString(fh.Filename) {
		return errs.NewBadRequestError("Only image files are allowed", true, nil, nil)
	}
	return nil
}

func (s *UploadService) save(ctx context.Context, fh *multipart.FileHeader) (model.UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	file, err := s.store.Save(src, fh.Filename)
	if err != nil {
		return model.UploadedFile{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("filename", file.Filename).
		Str("original_name", file.OriginalName).
		Int64("size", file.Size).
		Msg("stored upload")
	return file, nil
}

