package storage

import (
	"io"
	"strings"

	"github.com/CaCortez384/MiFestival/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// Client fronts the two object-storage areas the app uses: the ingest
// drop zone where directory CSV exports land, and the assets area
// where rendered poster images are published.
type Client struct {
	backend      StorageProvider
	bucketIngest string
	bucketAssets string
}

func New(cfg *config.Config) *Client {
	var backend StorageProvider

	if cfg.Storage.Provider == "local" {
		backend = NewLocalProvider(cfg.Storage.LocalStorage)
	} else {
		// S3-compatible (B2, MinIO, AWS)
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(cfg.Storage.KeyID, cfg.Storage.AppKey, ""),
			Endpoint:         aws.String(cfg.Storage.Endpoint),
			Region:           aws.String(cfg.Storage.Region),
			S3ForcePathStyle: aws.Bool(true),
		}
		sess := session.Must(session.NewSession(s3Config))
		backend = NewS3Provider(sess)
	}

	return &Client{
		backend:      backend,
		bucketIngest: cfg.Storage.BucketIngest,
		bucketAssets: cfg.Storage.BucketAssets,
	}
}

// --- Ingester Methods ---

// ListDirectoryFiles returns the CSV exports waiting in the drop zone.
func (c *Client) ListDirectoryFiles() ([]string, error) {
	keys, err := c.backend.List(c.bucketIngest, "")
	if err != nil {
		return nil, err
	}
	var csvKeys []string
	for _, key := range keys {
		if strings.HasSuffix(strings.ToLower(key), ".csv") {
			csvKeys = append(csvKeys, key)
		}
	}
	return csvKeys, nil
}

func (c *Client) DownloadDirectoryFile(key string) (*FileObject, error) {
	return c.backend.Get(c.bucketIngest, key)
}

func (c *Client) DeleteDirectoryFile(key string) error {
	return c.backend.Delete(c.bucketIngest, key)
}

// --- Poster Asset Methods ---

// UploadPosterFile publishes a rendered poster image so it can be
// shared; long cache lifetime since poster keys are content-addressed
// per upload.
func (c *Client) UploadPosterFile(key string, body io.ReadSeeker, contentType string) error {
	return c.backend.Put(c.bucketAssets, key, body, contentType, "max-age=86400")
}
