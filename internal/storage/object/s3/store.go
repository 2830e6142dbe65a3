// Package s3 stores content-addressed blobs in S3-compatible object
// storage, keyed by "<prefix>/<ref>".
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/storage/object"
)

// Config holds the settings for the S3 backend. Endpoint is optional and
// enables S3-compatible providers (path-style addressing is switched on
// whenever it is set).
type Config struct {
	Region          string
	Bucket          string
	Prefix          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
	}, nil
}

func (s *Store) Put(ctx context.Context, info domain.BlobInfo, r io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(info.Ref)),
		Body:        r,
		ContentType: aws.String(info.ContentType),
		Metadata: map[string]string{
			"filename": info.Filename,
		},
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put object bucket=%s ref=%s: %w", s.bucket, info.Ref, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, ref domain.Ref) (io.ReadCloser, *domain.BlobInfo, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(ref)),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("s3 get object bucket=%s ref=%s: %w", s.bucket, ref, err)
	}

	info := &domain.BlobInfo{
		Ref:         ref,
		Filename:    out.Metadata["filename"],
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
		CreatedAt:   orNow(out.LastModified),
	}
	return out.Body, info, nil
}

func (s *Store) objectKey(ref domain.Ref) string {
	if s.prefix == "" {
		return string(ref)
	}
	return s.prefix + "/" + string(ref)
}

func orNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

var _ object.Store = (*Store)(nil)
