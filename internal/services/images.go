package services

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageService accepts multipart image uploads and stores them on local
// disk under a random name; the returned URL is served from /uploads/.
type ImageService struct {
	AppConfig models.AppConfig
}

func (s ImageService) Upload(
	logger *zap.Logger,
	_ models.UserClaims,
	r *http.Request,
) (models.UploadImageResponse, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.AppConfig.MaxUploadSize)
	if err := r.ParseMultipartForm(s.AppConfig.MaxUploadSize); err != nil {
		return models.UploadImageResponse{}, apierrors.NewAPIError(400, apierrors.ErrInvalidBody)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return models.UploadImageResponse{}, apierrors.NewAPIError(400, apierrors.ErrInvalidBody)
	}
	defer func() { _ = file.Close() }()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return models.UploadImageResponse{}, apierrors.NewAPIError(400, apierrors.ErrNotAnImage)
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + extension

	if err := os.MkdirAll(s.AppConfig.UploadsDirectory, 0o755); err != nil {
		return models.UploadImageResponse{}, err
	}

	destination, err := os.Create(filepath.Join(s.AppConfig.UploadsDirectory, filename))
	if err != nil {
		return models.UploadImageResponse{}, err
	}
	defer func() { _ = destination.Close() }()

	if _, err := io.Copy(destination, file); err != nil {
		return models.UploadImageResponse{}, err
	}

	logger.Info("Image uploaded", zap.String("filename", filename))

	return models.UploadImageResponse{
		Filename: filename,
		ImageURL: strings.TrimRight(s.AppConfig.PublicURL, "/") + "/uploads/" + filename,
	}, nil
}
