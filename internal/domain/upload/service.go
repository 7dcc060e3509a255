package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 5 * 1024 * 1024 // 5 MiB
	UploadsDir    = "./uploads"
	StaticURLBase = "/uploads"
)

// AllowedExtensions maps accepted image extensions (lowercase, no dot) to
// their MIME types. An upload must pass BOTH the extension check and the
// MIME-type check; failing either rejects it.
var AllowedExtensions = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service handles image upload to local disk.
// Simple: validate -> save file -> record in DB -> return ID + URL.
type Service struct {
	repo       Repository
	baseDir    string // uploads dir on disk
	staticBase string // URL prefix the dir is served under
}

func NewService(repo Repository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

// Save validates the uploaded image, writes it under a fresh generated
// filename and records a metadata row. The on-disk name is never derived
// from the client-supplied name, only from a new UUID plus the validated
// extension, so collisions and path traversal are ruled out.
func (s *Service) Save(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadedImage, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return nil, ErrNoFile
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if _, ok := AllowedExtensions[ext]; !ok {
		return nil, ErrNotAnImage
	}

	declared := strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0]
	declared = strings.TrimSpace(declared)
	if !allowedMimeTypes[declared] {
		return nil, ErrNotAnImage
	}

	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the first 512 bytes as well; the declared type alone is
	// client-controlled.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	sniffed := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[sniffed] {
		return nil, ErrNotAnImage
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	absPath := filepath.Join(s.baseDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	img := &UploadedImage{
		ID:           uuid.New().String(),
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		UploadedAt:   time.Now(),
	}

	// A DB failure here leaves the written file orphaned on disk; there is
	// no rollback or garbage collection of orphans.
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return img, nil
}

// GetByID returns upload metadata by ID.
func (s *Service) GetByID(ctx context.Context, id string) (*UploadedImage, error) {
	return s.repo.GetByID(ctx, id)
}

// URL returns the public path the image is served under.
func (s *Service) URL(img *UploadedImage) string {
	return s.staticBase + "/" + img.Filename
}
