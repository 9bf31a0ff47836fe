package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"careerflow/internal/models"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// UploadsURLPrefix is where stored resumes are served from.
const UploadsURLPrefix = "/uploads"

var allowedResumeExt = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

var disablePDFConfigDir sync.Once

// Upload is a file received from a multipart form.
type Upload struct {
	Filename string
	Size     int64
	File     io.ReadSeeker
}

// ResumeStore persists resume uploads and returns their public path.
type ResumeStore interface {
	Save(ctx context.Context, upload Upload) (string, error)
	// Remove deletes a resume previously returned by Save. Unknown paths are not an error.
	Remove(ctx context.Context, publicPath string) error
}

// DiskResumeStore writes resumes into a local directory under random names.
type DiskResumeStore struct {
	dir      string
	maxBytes int64
	pdfConf  *model.Configuration
}

func NewDiskResumeStore(dir string, maxBytes int64) (*DiskResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	disablePDFConfigDir.Do(api.DisableConfigDir)
	return &DiskResumeStore{
		dir:      dir,
		maxBytes: maxBytes,
		pdfConf:  model.NewDefaultConfiguration(),
	}, nil
}

func (s *DiskResumeStore) Save(ctx context.Context, upload Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedResumeExt[ext]; !ok {
		return "", models.NewValidationError("Resume must be a .pdf, .doc or .docx file")
	}
	if upload.Size > s.maxBytes {
		return "", models.NewValidationError(fmt.Sprintf("Resume must be at most %d MB", s.maxBytes>>20))
	}

	if ext == ".pdf" {
		if err := api.Validate(upload.File, s.pdfConf); err != nil {
			return "", models.NewValidationError("Resume is not a valid PDF")
		}
		if _, err := upload.File.Seek(0, io.SeekStart); err != nil {
			return "", models.NewInternalError(err)
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(upload.File, s.maxBytes+1))
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(dst)
		return "", models.NewInternalError(err)
	}
	if n > s.maxBytes {
		_ = os.Remove(dst)
		return "", models.NewValidationError(fmt.Sprintf("Resume must be at most %d MB", s.maxBytes>>20))
	}

	return path.Join(UploadsURLPrefix, name), nil
}

func (s *DiskResumeStore) Remove(_ context.Context, publicPath string) error {
	name := path.Base(publicPath)
	if path.Dir(publicPath) != UploadsURLPrefix || name == "." || name == "/" {
		return fmt.Errorf("not a stored resume path: %q", publicPath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
