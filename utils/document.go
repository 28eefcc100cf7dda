package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxDocumentSize caps uploaded applicant documents at 10 MiB.
const MaxDocumentSize = 10 << 20

// ReadDocument reads an uploaded document into memory and returns its
// bytes together with the MIME type inferred from the filename when
// the form part carries none.
func ReadDocument(file multipart.File, header *multipart.FileHeader) ([]byte, string, error) {
	if !IsSupportedFormat(header.Filename) {
		return nil, "", fmt.Errorf("unsupported file format: %s", filepath.Ext(header.Filename))
	}
	if header.Size > MaxDocumentSize {
		return nil, "", fmt.Errorf("file too large: %d bytes (max %d)", header.Size, MaxDocumentSize)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(file, MaxDocumentSize+1)); err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	if buf.Len() > MaxDocumentSize {
		return nil, "", fmt.Errorf("file too large (max %d bytes)", MaxDocumentSize)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = ContentTypeForExt(filepath.Ext(header.Filename))
	}

	return buf.Bytes(), contentType, nil
}

// IsSupportedFormat checks if the file format is supported
func IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	supportedFormats := []string{".txt", ".pdf", ".doc", ".docx", ".png", ".jpg", ".jpeg"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// ContentTypeForExt maps a file extension to its MIME type
func ContentTypeForExt(ext string) string {
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
