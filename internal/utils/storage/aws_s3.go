package storage

import (
	"context"
	"cuisto-web/internal/utils"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const DefaultPresignExpiry = 24 * time.Hour

type (
	// AwsS3 turns stored image references into URLs a browser can load.
	AwsS3 interface {
		ResolveImageURL(ctx context.Context, ref string) string
	}

	awsS3 struct {
		bucket  string
		presign *s3.PresignClient
		expiry  time.Duration
		logger  zerolog.Logger
	}
)

// NewAwsS3 builds the resolver from configuration. Without a bucket every
// reference is passed through unchanged.
func NewAwsS3(logger zerolog.Logger) AwsS3 {
	logger = logger.With().Str("component", "storage").Logger()
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	if bucket == "" {
		return &awsS3{logger: logger}
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
	}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load aws config, image keys will not be resolved")
		return &awsS3{logger: logger}
	}
	return NewAwsS3WithClient(s3.NewFromConfig(cfg), bucket, DefaultPresignExpiry, logger)
}

func NewAwsS3WithClient(client *s3.Client, bucket string, expiry time.Duration, logger zerolog.Logger) AwsS3 {
	return &awsS3{
		bucket:  bucket,
		presign: s3.NewPresignClient(client),
		expiry:  expiry,
		logger:  logger,
	}
}

func (s *awsS3) ResolveImageURL(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || isAbsoluteURL(ref) || s.presign == nil {
		return ref
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		s.logger.Warn().Err(err).Str("ref", ref).Msg("failed to presign image")
		return ref
	}
	return req.URL
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "http://")
}
