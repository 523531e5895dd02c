package icons

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/multislider/internal/config"
	"github.com/vango-dev/multislider/internal/errors"
)

// S3API is the part of the S3 client used by S3Store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store serves icons from an S3 bucket.
//
// Example usage:
//
//	client := s3.NewFromConfig(awsCfg)
//	store := icons.NewS3Store(client, "assets", "icons/")
//	r.Get("/icons/{name}", icons.Handler(store, time.Hour).ServeHTTP)
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates an S3Store reading keys prefix+name from bucket.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// NewS3Client builds an S3 client from the icons configuration. Requests
// are unsigned, so the bucket must allow anonymous reads.
func NewS3Client(cfg config.S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.PathStyle,
		Credentials:  aws.AnonymousCredentials{},
	}
	if cfg.Region == "" {
		opts.Region = "us-east-1"
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Open fetches the named icon from the bucket.
func (s *S3Store) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	clean, ok := CleanName(name)
	if !ok {
		return nil, "", notFound(name)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + clean),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if stderrors.As(err, &nsk) {
			return nil, "", notFound(name)
		}
		return nil, "", errors.New("E302").WithDetail(s.bucket + "/" + s.prefix + clean).Wrap(err)
	}

	ct := contentType(clean)
	if out.ContentType != nil && *out.ContentType != "" {
		ct = *out.ContentType
	}
	return out.Body, ct, nil
}
