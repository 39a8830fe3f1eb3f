package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HistoricalPerformance is an append-only copy of a vendor's metrics taken
// right before they were recomputed
type HistoricalPerformance struct {
	ID       string `gorm:"type:char(26);primaryKey"`
	VendorID string `gorm:"type:char(26);not null;index"`
	Vendor   Vendor `gorm:"foreignKey:VendorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	OnTimeDeliveryRate  decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	QualityRatingAvg    decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	AverageResponseTime decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	FulfillmentRate     decimal.NullDecimal `gorm:"type:decimal(8,2)"`

	CreatedBy string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (h *HistoricalPerformance) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = ulid.Make().String()
	}
	return nil
}
