package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ariven/dermalens-v2/backend/config"
)

// ImageService stores uploaded label photos in S3 so a scan report can
// link back to the picture it was derived from.
type ImageService struct {
	s3Config *config.S3Config
	logger   *zap.Logger
}

var _ IImageService = (*ImageService)(nil)

func NewImageService(s3Config *config.S3Config, logger *zap.Logger) *ImageService {
	return &ImageService{s3Config: s3Config, logger: logger}
}

// UploadImage uploads image data to S3 and returns the public URL.
func (s *ImageService) UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	ext := "jpg"
	if contentType == "image/png" {
		ext = "png"
	}
	key := fmt.Sprintf("scan-images/%s.%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	s.logger.Info("image uploaded", zap.String("key", key))
	return url, nil
}
