package models

import "time"

type InventoryItem struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Barcode       string     `gorm:"size:100;uniqueIndex;not null" json:"barcode"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Category      string     `gorm:"size:100;default:Other" json:"category"`
	CurrentStock  int        `gorm:"not null;default:0;check:current_stock >= 0" json:"current_stock"`
	MinStockAlert int        `gorm:"not null;default:5" json:"min_stock_alert"`
	UnitType      string     `gorm:"size:50;default:pieces" json:"unit_type"`
	Brand         *string    `gorm:"size:255" json:"brand,omitempty"`
	Size          *string    `gorm:"size:100" json:"size,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastUsed      *time.Time `json:"last_used,omitempty"`
}

// UsageLog rows are append-only. Barcode is denormalized from the item so
// logs stay readable on their own.
type UsageLog struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID       string    `gorm:"size:36;index;not null" json:"item_id"`
	Barcode      string    `gorm:"size:100" json:"barcode"`
	QuantityUsed int       `gorm:"not null" json:"quantity_used"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	Notes        *string   `gorm:"size:500" json:"notes,omitempty"`
}

type Child struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DateOfBirth string    `gorm:"size:50;not null" json:"date_of_birth"`
	Gender      *string   `gorm:"size:50" json:"gender,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
	Notes       *string   `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DashboardStats is the aggregate shape returned by a single counting query,
// not a persisted table.
type DashboardStats struct {
	TotalItems      int64 `json:"total_items"`
	LowStockItems   int64 `json:"low_stock_items"`
	OutOfStockItems int64 `json:"out_of_stock_items"`
}
