package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vendor represents a supplier together with its current performance metrics
type Vendor struct {
	ID             string `gorm:"type:char(26);primaryKey"`
	Name           string `gorm:"type:varchar(100);unique;not null"`
	ContactDetails string `gorm:"type:text;not null"`
	Address        string `gorm:"type:text;not null"`
	VendorCode     string `gorm:"type:varchar(50);unique;not null"`

	// Metrics are NULL until the vendor has history to derive them from
	OnTimeDeliveryRate  decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	QualityRatingAvg    decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	AverageResponseTime decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	FulfillmentRate     decimal.NullDecimal `gorm:"type:decimal(8,2)"`

	CreatedBy string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = ulid.Make().String()
	}
	return nil
}
