package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Haavardeide1/Kystobservatorene/internal/config"
	model "github.com/Haavardeide1/Kystobservatorene/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService stores observation media (photos and videos)
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService creates a new Cloudinary service instance
func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
	}, nil
}

// UploadObservationMedia uploads a submission's photo or video and
// returns the secure URL plus the storage path.
func (s *CloudinaryService) UploadObservationMedia(ctx context.Context, file multipart.File, submissionID, mediaType string) (string, string, error) {
	publicID := fmt.Sprintf("observations/%s", submissionID)
	overwrite := true

	resourceType := "image"
	if mediaType == model.MediaTypeVideo {
		resourceType = "video"
	}

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "kystobservatorene/observations",
		Overwrite:    &overwrite,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload observation media: %w", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// DeleteMedia removes a stored media object by its public ID
func (s *CloudinaryService) DeleteMedia(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}
