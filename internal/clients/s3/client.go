// Package s3 stores rendered invoice documents in an S3-compatible
// bucket. Objects are never public: reads go through short-lived
// presigned URLs handed out by the invoice lookup endpoint.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/harmonia-school/payments/pkg/config"
)

const cacheControl = "max-age=3600"

type Client struct {
	bucket string
	svc    *s3.S3
}

func NewClient(cfg config.S3) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.Region),
		Endpoint:         aws.String(cfg.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Client{
		bucket: cfg.Bucket,
		svc:    s3.New(sess),
	}, nil
}

func (c *Client) UploadInvoicePDF(ctx context.Context, path string, pdf []byte) error {
	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(pdf),
		ContentLength: aws.Int64(int64(len(pdf))),
		ContentType:   aws.String("application/pdf"),
		CacheControl:  aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", path, err)
	}

	return nil
}

// SignedInvoiceURL returns a presigned GET link valid for ttl. Knowing
// the storage path alone is not enough to fetch the document.
func (c *Client) SignedInvoiceURL(_ context.Context, path string, ttl time.Duration) (string, error) {
	req, _ := c.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
	})

	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", path, err)
	}

	return url, nil
}
