package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	cfgpkg "github.com/Global-Manu-Man/cnk-ceneka/config"
)

// mediaFolder is the object-key prefix for hosted property images.
const mediaFolder = "real_estate_properties"

// allowedImageExtensions restricts uploads to image formats.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrUnsupportedImageFormat is returned for files outside the allowed set.
var ErrUnsupportedImageFormat = fmt.Errorf("formato de imagen no soportado (jpg, jpeg, png, webp)")

// MediaUploadResult describes a stored image. Callers only ever consume
// the URL; the key exists for later deletion.
type MediaUploadResult struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	URL      string `json:"url"`
}

// MediaObject is one hosted image in a listing
type MediaObject struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// InterfaceMediaService stores property images and returns their hosted
// URLs, plus listing and deletion of what is already hosted.
type InterfaceMediaService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*MediaUploadResult, error)
	ListImages(ctx context.Context, maxResults int32) ([]MediaObject, error)
	DeleteImage(ctx context.Context, key string) error
	IsConfigured() bool
}

// MediaService hosts property images on S3-compatible object storage
type MediaService struct {
	client    *s3.Client
	bucket    string
	publicURL string
	region    string
}

// NewMediaService creates a new media service. With incomplete credentials
// the service stays unconfigured and upload endpoints report 500.
func NewMediaService(cfg *cfgpkg.Config) (InterfaceMediaService, error) {
	if cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "" || cfg.S3Bucket == "" {
		return &MediaService{}, nil
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &MediaService{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
		region:    cfg.S3Region,
	}, nil
}

// IsConfigured reports whether object storage is usable
func (s *MediaService) IsConfigured() bool {
	return s.client != nil && s.bucket != ""
}

// UploadImage stores one multipart image and returns its hosted URL
func (s *MediaService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*MediaUploadResult, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("object storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return nil, ErrUnsupportedImageFormat
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s%s", mediaFolder, uuid.New().String(), ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	return &MediaUploadResult{
		Key:      key,
		FileName: filepath.Base(key),
		Size:     file.Size,
		MimeType: contentType,
		URL:      s.objectURL(key),
	}, nil
}

// ListImages lists hosted property images, newest metadata as stored
func (s *MediaService) ListImages(ctx context.Context, maxResults int32) ([]MediaObject, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("object storage is not configured")
	}
	if maxResults <= 0 {
		maxResults = 100
	}

	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(mediaFolder + "/"),
		MaxKeys: aws.Int32(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	objects := make([]MediaObject, 0, len(out.Contents))
	for _, obj := range out.Contents {
		entry := MediaObject{
			Key: aws.ToString(obj.Key),
			URL: s.objectURL(aws.ToString(obj.Key)),
		}
		if obj.Size != nil {
			entry.Size = *obj.Size
		}
		if obj.LastModified != nil {
			entry.LastModified = *obj.LastModified
		}
		objects = append(objects, entry)
	}
	return objects, nil
}

// DeleteImage removes a hosted image by key
func (s *MediaService) DeleteImage(ctx context.Context, key string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("object storage is not configured")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *MediaService) objectURL(key string) string {
	if s.publicURL != "" {
		return strings.TrimRight(s.publicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
