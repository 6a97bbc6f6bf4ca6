package domain

import (
	"time"

	"gorm.io/gorm"
)

// ServiceMaster is a catalog entry specialists can offer.
type ServiceMaster struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	S3Key       string `gorm:"column:s3_key" json:"s3_key,omitempty"`
	BucketName  string `gorm:"column:bucket_name" json:"bucket_name,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ServiceMaster) TableName() string { return "service_offerings_master_list" }

// ServiceOffering joins a specialist to a catalog entry, unique per pair.
type ServiceOffering struct {
	ID              string `gorm:"column:id;primaryKey" json:"id"`
	SpecialistID    string `gorm:"column:specialist_id;uniqueIndex:ux_offering_pair;index" json:"specialist_id"`
	ServiceMasterID string `gorm:"column:service_master_id;uniqueIndex:ux_offering_pair;index" json:"service_master_id"`

	MasterService *ServiceMaster `gorm:"foreignKey:ServiceMasterID" json:"master_service,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ServiceOffering) TableName() string { return "service_offerings" }
