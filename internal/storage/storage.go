// Package storage abstracts the external object store. Uploads return a
// public URL plus an opaque identifier used for later deletion.
package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrUploadFailed    = errors.New("upload failed")
)

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type ObjectStorage interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
