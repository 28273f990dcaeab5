package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mandhitown/backend/config"
)

// Attachment is the binary payload of one uploaded file.
type Attachment struct {
	Filename string
	Data     []byte
}

// MediaUploader stores binary image data and returns a durable URL. A nil
// MediaUploader means the upload service is not configured; callers decide
// per operation whether that is a hard failure or a silent skip.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, key string) (string, error)
}

// S3MediaService uploads media to the configured S3 bucket. Uploads are
// single-attempt; there is no retry policy.
type S3MediaService struct {
	s3Config *config.S3Config
}

// NewS3MediaService creates an S3-backed uploader.
func NewS3MediaService(s3Config *config.S3Config) *S3MediaService {
	return &S3MediaService{s3Config: s3Config}
}

// Upload puts the object under key and returns its public URL.
func (s *S3MediaService) Upload(ctx context.Context, data []byte, key string) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[MediaService] uploaded %s", publicURL)

	return publicURL, nil
}
