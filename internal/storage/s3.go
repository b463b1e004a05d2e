package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	s3WriteTimeout = 30 * time.Second
	s3ReadTimeout  = 10 * time.Second
)

// S3Storage keeps memory box photos in a private S3-compatible bucket
// (AWS, MinIO, R2, Spaces) and hands out presigned links.
type S3Storage struct {
	client        *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	directURL     string
	presignExpiry time.Duration
}

type S3Config struct {
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // empty for AWS
	UsePathStyle  bool
	PresignExpiry time.Duration
}

// loadOptions builds the SDK options; static keys win over the default chain
func (c S3Config) loadOptions() []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" && c.SecretKey != "" {
		provider := credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")
		opts = append(opts, config.WithCredentialsProvider(provider))
	}
	return opts
}

// directURL is the unsigned object base, used when presigning fails
func (c S3Config) directURL() string {
	if c.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.Bucket, c.Region)
	}
	return strings.TrimSuffix(c.Endpoint, "/") + "/" + c.Bucket
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s3WriteTimeout)
	defer cancel()

	awsCfg, err := config.LoadDefaultConfig(ctx, cfg.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		}
	})

	st := &S3Storage{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		directURL:     cfg.directURL(),
		presignExpiry: cfg.PresignExpiry,
	}

	err = st.ensureBucket(ctx)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ensureBucket creates the bucket on first start (handy with MinIO)
func (s *S3Storage) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("bucket %q is missing and could not be created: %w", s.bucket, err)
	}

	slog.Info("created photo bucket", "bucket", s.bucket)
	return nil
}

// Save uploads a photo, typed by its extension so browsers render it inline
func (s *S3Storage) Save(key string, file io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), s3WriteTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         file,
		CacheControl: aws.String("private, max-age=3600"),
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to upload %q: %w", key, err)
	}
	return nil
}

func (s *S3Storage) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s3ReadTimeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// URL presigns a GET for the photo; on failure it returns the direct link,
// which only works for public buckets.
func (s *S3Storage) URL(key string) string {
	signed, err := s.PresignedURL(key, s.presignExpiry)
	if err != nil {
		slog.Warn("presign failed, using direct URL", "error", err, "key", key)
		return s.directURL + "/" + key
	}
	return signed
}

func (s *S3Storage) PresignedURL(key string, expiry time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s3ReadTimeout)
	defer cancel()

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %q: %w", key, err)
	}
	return req.URL, nil
}
