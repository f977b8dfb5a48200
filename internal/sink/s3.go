package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/keihi-dev/keihi/internal/export"
)

// S3Config locates the bucket. Endpoint and PathStyle support
// S3-compatible servers such as MinIO.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool
	// Static credentials; empty falls back to the default chain.
	AccessKeyID     string
	SecretAccessKey string
}

// S3 uploads documents as objects.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 builds an S3 sink. optFns are applied to the client options after
// the config-derived ones.
func NewS3(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "ap-northeast-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	opts := append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)
	client := s3.NewFromConfig(awsCfg, opts...)

	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Key returns the object key for a file name.
func (s *S3) Key(fileName string) string {
	if s.prefix == "" {
		return fileName
	}
	return strings.TrimSuffix(s.prefix, "/") + "/" + fileName
}

// Deliver uploads doc and returns its s3:// URI.
func (s *S3) Deliver(ctx context.Context, doc export.Document) (string, error) {
	key := s.Key(doc.FileName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(doc.Content),
		ContentType: aws.String(doc.MIMEType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
