package domain

import (
	"time"

	"gorm.io/gorm"
)

type MediaType string

const (
	MediaProfile  MediaType = "profile"
	MediaGallery  MediaType = "gallery"
	MediaDocument MediaType = "document"
	MediaVideo    MediaType = "video"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaProfile, MediaGallery, MediaDocument, MediaVideo:
		return true
	}
	return false
}

// AllowedMimeTypes restricts what may be attached to a specialist.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"video/mp4":       true,
}

// Media is an uploaded asset bound to exactly one specialist. It is
// removed together with its specialist.
type Media struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	StorageURL      string    `gorm:"column:storage_url" json:"url"`
	StoragePublicID string    `gorm:"column:storage_public_id" json:"-"`
	FileName        string    `gorm:"column:file_name" json:"file_name"`
	FileSize        int64     `gorm:"column:file_size" json:"file_size"`
	MimeType        string    `gorm:"column:mime_type" json:"mime_type"`
	MediaType       MediaType `gorm:"column:media_type;index:idx_media_specialist_type" json:"media_type"`
	DisplayOrder    int       `gorm:"column:display_order;index:idx_media_specialist_order" json:"display_order"`

	SpecialistID string `gorm:"column:specialist_id;index:idx_media_specialist_order;index:idx_media_specialist_type" json:"specialist_id"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Media) TableName() string { return "media" }
