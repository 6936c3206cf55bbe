package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// GCSStorageService implements StorageInterface on a Google Cloud Storage
// bucket obtained through the Firebase Admin SDK. Presigned URLs are
// V4-signed, so clients upload and download without touching this server.
type GCSStorageService struct {
	bucket *gcs.BucketHandle
}

// NewGCSStorageService initialises the Firebase app and resolves the
// configured bucket. credentialsFile may be empty, in which case default
// application credentials are used.
func NewGCSStorageService(ctx context.Context, bucketName, credentialsFile string) (*GCSStorageService, error) {
	if bucketName == "" {
		return nil, errors.New("storage bucket name is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket %q: %w", bucketName, err)
	}

	return &GCSStorageService{bucket: bucket}, nil
}

func (g *GCSStorageService) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	return g.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:      gcs.SigningSchemeV4,
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(expiresIn),
	})
}

func (g *GCSStorageService) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return g.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(expiresIn),
	})
}

func (g *GCSStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	attrs, err := g.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (g *GCSStorageService) DeleteFile(ctx context.Context, key string) error {
	err := g.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// SaveFile is only meaningful for the mock backend; cloud clients upload
// directly through the presigned URL.
func (g *GCSStorageService) SaveFile(key string, reader io.Reader) error {
	return errors.New("direct saves are not supported by the gcs backend")
}

// ReadFile is only meaningful for the mock backend.
func (g *GCSStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return nil, errors.New("direct reads are not supported by the gcs backend")
}
