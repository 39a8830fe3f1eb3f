package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Purchase order statuses
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// IsValidStatus reports whether status is one of the known order statuses
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PurchaseOrder represents an order placed with a vendor
type PurchaseOrder struct {
	PONumber string `gorm:"column:po_number;type:varchar(100);primaryKey"`
	VendorID string `gorm:"type:char(26);not null;index"`
	Vendor   Vendor `gorm:"foreignKey:VendorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	OrderDate    time.Time  `gorm:"not null;index"`
	DeliveryDate *time.Time
	// Items maps item name to quantity
	Items    datatypes.JSONMap `gorm:"not null"`
	Quantity int               `gorm:"not null"`
	Status   string            `gorm:"type:varchar(20);not null;default:Pending"`

	QualityRating      decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	IssueDate          time.Time           `gorm:"not null"`
	AcknowledgmentDate *time.Time
	ResponseTime       decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	OnTimeDelivery     bool                `gorm:"not null;default:false"`

	CreatedBy string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// IsPending reports whether the order can still be edited
func (p *PurchaseOrder) IsPending() bool {
	return p.Status == StatusPending
}

// IsAcknowledged reports whether the vendor has acknowledged the order
func (p *PurchaseOrder) IsAcknowledged() bool {
	return p.AcknowledgmentDate != nil
}
