package storage

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ozon-logistics-api/internal/config"
)

const defaultRegion = "us-east-1"

// Archive keeps rendered reports in an S3 compatible bucket and hands out
// temporary download links.
type Archive interface {
	Store(ctx context.Context, key string, content []byte, contentType string) (string, error)
}

type MinioArchive struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewArchive connects to the bucket and creates it when missing. It returns
// nil when storage is disabled.
func NewArchive(ctx context.Context, cfg config.Storage) (*MinioArchive, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "storage: error creating client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "storage: error checking bucket %s", cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: defaultRegion}); err != nil {
			return nil, errors.Wrapf(err, "storage: error creating bucket %s", cfg.Bucket)
		}
		logrus.WithField("bucket", cfg.Bucket).Info("storage: bucket created")
	}

	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &MinioArchive{client: client, bucket: cfg.Bucket, expiry: expiry}, nil
}

// Store uploads the content under key and returns a presigned GET url.
func (a *MinioArchive) Store(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "storage: error uploading %s", key)
	}

	link, err := a.client.PresignedGetObject(ctx, a.bucket, key, a.expiry, url.Values{})
	if err != nil {
		return "", errors.Wrapf(err, "storage: error presigning %s", key)
	}

	return link.String(), nil
}
