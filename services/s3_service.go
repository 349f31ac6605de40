package services

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/kendall-kelly/storefront/config"
	"github.com/kendall-kelly/storefront/store"
)

var _ store.SnapshotUploader = (*S3Service)(nil)

// S3Service copies data file snapshots into a bucket
type S3Service struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Service builds an S3 client from the application config. Static
// credentials are used when both keys are set, the default AWS credential
// chain otherwise.
func NewS3Service(ctx context.Context, cfg *appConfig.Config) (*S3Service, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Service{
		client: s3.NewFromConfig(awsConfig),
		bucket: cfg.AWSS3Bucket,
		prefix: cfg.SnapshotPrefix,
	}, nil
}

// SnapshotKey returns the object key a data file is stored under
func SnapshotKey(prefix, name string) string {
	return path.Join(prefix, path.Base(name))
}

// UploadSnapshot overwrites the bucket's copy of the named data file
func (s *S3Service) UploadSnapshot(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(SnapshotKey(s.prefix, name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}
