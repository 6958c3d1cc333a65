package minio

import (
	"context"
	"io"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// UploadInfo contains information about an uploaded object
type UploadInfo struct {
	Bucket string
	Key    string
	ETag   string
	Size   int64
}

// PutObjectOptions represents options for uploading an object
type PutObjectOptions struct {
	ContentType        string
	ContentDisposition string
	UserMetadata       map[string]string
}

// ObjectName returns name with the configured prefix applied
func (c *Client) ObjectName(name string) string {
	name = SanitizeObjectName(name)
	if c.config.Prefix == "" {
		return name
	}
	return strings.TrimSuffix(c.config.Prefix, "/") + "/" + name
}

// PutObject uploads an object into the configured bucket
func (c *Client) PutObject(ctx context.Context, objectName string, reader io.Reader, objectSize int64, opts PutObjectOptions) (UploadInfo, error) {
	if err := c.checkClosed(); err != nil {
		return UploadInfo{}, err
	}

	if err := ValidateObjectName(objectName); err != nil {
		return UploadInfo{}, WrapError("PutObject", ErrInvalidObjectName, c.config.Bucket, objectName)
	}

	info, err := c.client.PutObject(ctx, c.config.Bucket, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType:        opts.ContentType,
		ContentDisposition: opts.ContentDisposition,
		UserMetadata:       opts.UserMetadata,
	})
	if err != nil {
		return UploadInfo{}, WrapError("PutObject", err, c.config.Bucket, objectName)
	}

	c.logger.Info("object uploaded successfully",
		zap.String("bucket", info.Bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)

	return UploadInfo{
		Bucket: info.Bucket,
		Key:    info.Key,
		ETag:   info.ETag,
		Size:   info.Size,
	}, nil
}

// PutText uploads a string as a plain-text attachment
func (c *Client) PutText(ctx context.Context, objectName, fileName, content string) (UploadInfo, error) {
	return c.PutObject(ctx, objectName, strings.NewReader(content), int64(len(content)), PutObjectOptions{
		ContentType:        "text/plain; charset=utf-8",
		ContentDisposition: AttachmentDisposition(fileName),
	})
}

// AttachmentDisposition builds a Content-Disposition value for a download.
// Quotes and separators in fileName are escaped; non-ASCII names use RFC 2231 encoding.
func AttachmentDisposition(fileName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); v != "" {
		return v
	}
	return "attachment"
}

// RemoveObject removes an object from the configured bucket
func (c *Client) RemoveObject(ctx context.Context, objectName string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	if err := c.client.RemoveObject(ctx, c.config.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return WrapError("RemoveObject", err, c.config.Bucket, objectName)
	}
	return nil
}

// PresignedGetObject generates a presigned URL for HTTP GET operations
func (c *Client) PresignedGetObject(ctx context.Context, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	if objectName == "" {
		return nil, WrapError("PresignedGetObject", ErrInvalidObjectName, c.config.Bucket, objectName)
	}

	if expiry <= 0 {
		return nil, WrapErrorWithMessage("PresignedGetObject", ErrInvalidArgument, "expiry must be greater than 0")
	}

	presignedURL, err := c.client.PresignedGetObject(ctx, c.config.Bucket, objectName, expiry, reqParams)
	if err != nil {
		return nil, WrapError("PresignedGetObject", err, c.config.Bucket, objectName)
	}

	c.logger.Debug("presigned GET URL generated",
		zap.String("bucket", c.config.Bucket),
		zap.String("object", objectName),
		zap.Duration("expiry", expiry),
	)

	return presignedURL, nil
}
