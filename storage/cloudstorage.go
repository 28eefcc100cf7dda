package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/talentmatch/backend/config"
)

// Document kinds stored for applicants. The kind doubles as the
// object path prefix in the bucket.
const (
	DocumentResume      = "resumes"
	DocumentCoverLetter = "cover-letters"
	DocumentPhoto       = "photos"
)

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.DocumentBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadDocument uploads an applicant document to Cloud Storage under
// the given kind prefix and returns its public URL.
func (c *CloudStorageClient) UploadDocument(ctx context.Context, kind, userID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	timestamp := time.Now().Unix()

	objectName := fmt.Sprintf("%s/%s/%d%s", kind, sanitizeID(userID), timestamp, ext)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = header.Header.Get("Content-Type")
	if wc.ContentType == "" {
		wc.ContentType = getContentType(ext)
	}

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)

	return url, nil
}

// UploadDocumentFromBytes uploads already buffered document content.
func (c *CloudStorageClient) UploadDocumentFromBytes(ctx context.Context, kind, userID string, content []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	timestamp := time.Now().Unix()

	objectName := fmt.Sprintf("%s/%s/%d%s", kind, sanitizeID(userID), timestamp, ext)

	bucket := c.client.Bucket(c.bucketName)
	obj := bucket.Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = getContentType(ext)

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
	return url, nil
}

// DeleteDocument deletes a stored document by its public URL
func (c *CloudStorageClient) DeleteDocument(ctx context.Context, url string) error {
	objectName, err := c.objectName(url)
	if err != nil {
		return err
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// GetSignedURL generates a signed URL for temporary access
func (c *CloudStorageClient) GetSignedURL(ctx context.Context, objectName string, expiration time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}

	return url, nil
}

// DownloadDocument downloads a stored document by its public URL
func (c *CloudStorageClient) DownloadDocument(ctx context.Context, url string) ([]byte, error) {
	objectName, err := c.objectName(url)
	if err != nil {
		return nil, err
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)

	rc, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return data, nil
}

func (c *CloudStorageClient) objectName(url string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("invalid document URL format")
	}
	return strings.TrimPrefix(url, prefix), nil
}

func sanitizeID(userID string) string {
	sanitized := strings.ReplaceAll(userID, "@", "_at_")
	return strings.ReplaceAll(sanitized, ".", "_")
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
