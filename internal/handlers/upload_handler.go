package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
)

// MaxImageSize caps post-image uploads at 4MB.
const MaxImageSize = 4 << 20

// UploadHandler handles the post-image upload route
type UploadHandler struct {
	uploadRepository repositories.UploadRepository
	uploadDir        string
}

// NewUploadHandler creates a new UploadHandler and makes sure the upload
// directory exists
func NewUploadHandler(uploadRepo repositories.UploadRepository, uploadDir string) (*UploadHandler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadHandler{
		uploadRepository: uploadRepo,
		uploadDir:        uploadDir,
	}, nil
}

// RegisterUploadRoutes registers upload-related routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/upload/post-image", h.PostImage)
}

// PostImage accepts a single image of up to 4MB, stores it, records the
// completed upload against the caller's identity, and returns the file URL.
// The auth middleware has already rejected anonymous requests before the
// body is read.
func (h *UploadHandler) PostImage(c echo.Context) error {
	uid := firebaseUIDFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "A single 'file' form field is required")
	}
	if file.Size > MaxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image exceeds the 4MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported image type: "+ext)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	fileName := fmt.Sprintf("post_%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(h.uploadDir, fileName))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	fileURL := "/uploads/" + fileName

	upload := &models.Upload{
		UploaderUID: uid,
		FileURL:     fileURL,
		FileName:    file.Filename,
		Size:        file.Size,
		ContentType: contentType,
	}
	// A stored file without a record is useless to the frontend, so this
	// error fails the whole upload.
	if err := h.uploadRepository.RecordUpload(c.Request().Context(), upload); err != nil {
		log.Printf("upload: failed to record completed upload for %s: %v", uid, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"fileUrl": fileURL})
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}
