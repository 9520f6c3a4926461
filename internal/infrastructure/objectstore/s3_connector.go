package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Connector talks to an S3 compatible bucket fronted by a CDN
type S3Connector struct {
	client        *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	cdnBaseURL    string
	presignExpiry time.Duration
	logger        logger.Logger
}

// NewS3Connector creates a media.ObjectStore for the configured bucket.
// Static credentials are used when both keys are set; otherwise the default AWS chain applies.
func NewS3Connector(ctx context.Context, settings *config.ObjectStorageSettings, logger logger.Logger) (media.ObjectStore, error) {
	return newS3Connector(ctx, settings, logger)
}

func newS3Connector(ctx context.Context, settings *config.ObjectStorageSettings, logger logger.Logger) (*S3Connector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(settings.Region)}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
		o.UsePathStyle = settings.UsePathStyle
	})

	return &S3Connector{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        settings.Bucket,
		cdnBaseURL:    strings.TrimRight(settings.CDNBaseURL, "/"),
		presignExpiry: settings.PresignExpiry,
		logger:        logger,
	}, nil
}

// PutObject uploads body under key in one request
func (c *S3Connector) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}

	c.logger.Info("object stored", "key", key, "size", size, "content_type", contentType)
	return nil
}

// HeadObject returns the size and content type of key
func (c *S3Connector) HeadObject(ctx context.Context, key string) (*media.ObjectInfo, error) {
	out, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, apperr.NotFound("object", key)
		}
		return nil, fmt.Errorf("failed to head object %s: %w", key, err)
	}

	return &media.ObjectInfo{
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

// DeleteObject removes key; deleting a missing key succeeds
func (c *S3Connector) DeleteObject(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.logger.Info("object deleted", "key", key)
	return nil
}

// CreateMultipartUpload starts a multipart upload and returns its upload id
func (c *S3Connector) CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error) {
	out, err := c.client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create multipart upload for %s: %w", key, err)
	}

	uploadID := aws.ToString(out.UploadId)
	c.logger.Info("multipart upload created", "key", key, "upload_id", uploadID)
	return uploadID, nil
}

// PresignUploadPart returns a URL the client can PUT one part to
func (c *S3Connector) PresignUploadPart(ctx context.Context, key, uploadID string, partNumber int32) (string, error) {
	req, err := c.presigner.PresignUploadPart(ctx, &s3.UploadPartInput{
		Bucket:     aws.String(c.bucket),
		Key:        aws.String(key),
		UploadId:   aws.String(uploadID),
		PartNumber: aws.Int32(partNumber),
	}, s3.WithPresignExpires(c.presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign part %d of %s: %w", partNumber, key, err)
	}
	return req.URL, nil
}

// ListParts returns every uploaded part, following pagination
func (c *S3Connector) ListParts(ctx context.Context, key, uploadID string) ([]media.Part, error) {
	var (
		parts  []media.Part
		marker *string
	)
	for {
		out, err := c.client.ListParts(ctx, &s3.ListPartsInput{
			Bucket:           aws.String(c.bucket),
			Key:              aws.String(key),
			UploadId:         aws.String(uploadID),
			PartNumberMarker: marker,
		})
		if err != nil {
			return nil, c.multipartError(err, "list parts of", key, uploadID)
		}

		for _, p := range out.Parts {
			parts = append(parts, media.Part{
				PartNumber: aws.ToInt32(p.PartNumber),
				ETag:       aws.ToString(p.ETag),
				Size:       aws.ToInt64(p.Size),
			})
		}

		if !aws.ToBool(out.IsTruncated) {
			return parts, nil
		}
		marker = out.NextPartNumberMarker
	}
}

// CompleteMultipartUpload assembles the parts; parts must already be sorted by number
func (c *S3Connector) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []media.Part) error {
	completed := make([]types.CompletedPart, len(parts))
	for i, p := range parts {
		completed[i] = types.CompletedPart{
			ETag:       aws.String(p.ETag),
			PartNumber: aws.Int32(p.PartNumber),
		}
	}

	_, err := c.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(c.bucket),
		Key:             aws.String(key),
		UploadId:        aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{Parts: completed},
	})
	if err != nil {
		return c.multipartError(err, "complete", key, uploadID)
	}

	c.logger.Info("multipart upload completed", "key", key, "upload_id", uploadID, "parts", len(parts))
	return nil
}

// AbortMultipartUpload discards the upload and its parts
func (c *S3Connector) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	_, err := c.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(c.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil {
		return c.multipartError(err, "abort", key, uploadID)
	}

	c.logger.Info("multipart upload aborted", "key", key, "upload_id", uploadID)
	return nil
}

// PublicURL returns the CDN URL for key
func (c *S3Connector) PublicURL(key string) string {
	return c.cdnBaseURL + "/" + strings.TrimLeft(key, "/")
}

func (c *S3Connector) multipartError(err error, op, key, uploadID string) error {
	var noSuchUpload *types.NoSuchUpload
	if errors.As(err, &noSuchUpload) {
		return apperr.NotFound("multipart upload", uploadID)
	}
	return fmt.Errorf("failed to %s multipart upload %s: %w", op, key, err)
}
