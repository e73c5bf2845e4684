package imagestore

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinary builds a Store backed by Cloudinary.
func NewCloudinary(cloudName, apiKey, apiSecret string) (Store, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &cloudinaryStore{client: client}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, filePath, folder string) (*Asset, error) {
	resp, err := s.client.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder:         folder,
		Transformation: "c_limit,w_1000,h_1000/q_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	return &Asset{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *cloudinaryStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete image %s: %w", publicID, err)
	}
	return nil
}
