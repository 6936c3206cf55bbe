package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// StorageInterface defines the interface for document/image storage
// backends. Two implementations exist: mock (local filesystem, served by
// the HTTP layer) and Google Cloud Storage via the Firebase Admin SDK.
type StorageInterface interface {
	// GeneratePresignedUploadURL generates a presigned URL for uploading
	// key: storage path/key for the file
	// contentType: MIME type (e.g., "image/jpeg")
	// expiresIn: how long the URL should be valid
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL generates a presigned URL for downloading
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage
	DeleteFile(ctx context.Context, key string) error

	// SaveFile saves a file (used by the mock storage HTTP handler)
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the mock storage HTTP handler)
	ReadFile(key string) (io.ReadCloser, error)
}

// KYCDocumentKey builds the storage key for a customer's KYC document.
// docType is "id" or "license".
func KYCDocumentKey(customerID int32, docType, ext string) string {
	return fmt.Sprintf("customers/%d/%s%s", customerID, docType, ext)
}

// FleetImageKey builds the storage key for a fleet unit photo.
func FleetImageKey(unitID int32, ext string) string {
	return fmt.Sprintf("fleet/%d%s", unitID, ext)
}
