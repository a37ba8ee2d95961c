package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/BruksfildServices01/marqueai/internal/config"
)

var ErrDisabled = errors.New("storage: uploads are not configured")

// Uploader stores a public asset under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// New picks the backend named by STORAGE_DRIVER.
func New(cfg *config.Config) (Uploader, error) {
	switch strings.ToLower(cfg.StorageDriver) {
	case "s3":
		return NewS3Uploader(cfg)
	case "cloudinary":
		return NewCloudinaryUploader(cfg)
	case "", "none":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}

// ======================================================
// S3
// ======================================================

type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Uploader(cfg *config.Config) (*S3Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("storage: S3_BUCKET is required")
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	base := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Uploader{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		publicBaseURL: base,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	return u.publicBaseURL + "/" + key, nil
}

// ======================================================
// CLOUDINARY
// ======================================================

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, errors.New("storage: cloudinary credentials not set")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: cloudinary init: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, key string, body []byte, _ string) (string, error) {
	overwrite := true
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(body), uploader.UploadParams{
		Folder:    u.folder,
		PublicID:  strings.TrimSuffix(key, ".webp"),
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("storage: cloudinary upload %s: %w", key, err)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("storage: cloudinary upload %s: %s", key, res.Error.Message)
	}

	return res.SecureURL, nil
}

// ======================================================
// DISABLED
// ======================================================

type Disabled struct{}

func (Disabled) Upload(context.Context, string, []byte, string) (string, error) {
	return "", ErrDisabled
}
