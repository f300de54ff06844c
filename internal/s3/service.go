package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	idtypes "github.com/pointsclub/clubadmin/internal/types"
)

type Service interface {
	// UploadImage stores img and returns its public URL
	UploadImage(ctx context.Context, img *Image) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// objectAPI is the part of the S3 client the service uses
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type s3ServiceImpl struct {
	client objectAPI
	config config.StorageConfig
	logger *logger.Logger
}

// NewService returns the S3 backed image store, or a store that rejects
// uploads when storage is disabled
func NewService(cfg *config.Configuration, logger *logger.Logger) (Service, error) {
	if !cfg.Storage.Enabled {
		return disabledService{}, nil
	}

	awsCfg, err := config.LoadAwsConfig(context.Background(), cfg.Storage.Region)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrStorage)
	}

	return newService(s3.NewFromConfig(awsCfg), cfg.Storage, logger), nil
}

func newService(client objectAPI, cfg config.StorageConfig, logger *logger.Logger) *s3ServiceImpl {
	return &s3ServiceImpl{client: client, config: cfg, logger: logger}
}

func (s *s3ServiceImpl) objectKey(img *Image) string {
	name := fmt.Sprintf("%s/%s/%s.%s", img.Kind, img.OwnerID, idtypes.GenerateUUID(), img.Extension)
	if s.config.KeyPrefix != "" {
		return strings.TrimSuffix(s.config.KeyPrefix, "/") + "/" + name
	}
	return name
}

func (s *s3ServiceImpl) publicURL(key string) string {
	return strings.TrimSuffix(s.config.PublicBaseURL, "/") + "/" + key
}

// UploadImage implements Service.
func (s *s3ServiceImpl) UploadImage(ctx context.Context, img *Image) (string, error) {
	if s.config.MaxUploadBytes > 0 && int64(len(img.Data)) > s.config.MaxUploadBytes {
		return "", ierr.NewErrorf("image of %d bytes exceeds limit", len(img.Data)).
			WithHintf("Images must be smaller than %d KB", s.config.MaxUploadBytes/1024).
			Mark(ierr.ErrValidation)
	}
	if err := DetectImage(img); err != nil {
		return "", err
	}

	key := s.objectKey(img)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return "", ierr.WithError(err).WithHint("Failed to upload image").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrStorage)
	}

	s.logger.Debugw("uploaded image", "bucket", s.config.Bucket, "key", key, "content_type", img.ContentType)
	return s.publicURL(key), nil
}

// Exists implements Service.
func (s *s3ServiceImpl) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var nsk *types.NoSuchKey
		var nske *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nske) {
			return false, nil
		}
		return false, ierr.WithError(err).WithHint("Failed to check image").
			Mark(ierr.ErrStorage)
	}

	return true, nil
}

type disabledService struct{}

func (disabledService) UploadImage(context.Context, *Image) (string, error) {
	return "", ierr.NewError("storage disabled").
		WithHint("Image uploads are not configured").
		Mark(ierr.ErrInvalidOperation)
}

func (disabledService) Exists(context.Context, string) (bool, error) {
	return false, nil
}
