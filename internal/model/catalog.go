package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HawkerCenter groups stalls at one address.
type HawkerCenter struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Address    string    `json:"address" gorm:"size:255;not null"`
	Facilities string    `json:"facilities" gorm:"type:text"`
	ImageURL   string    `json:"image_url" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Stall is a single hawker stall. CenterID is a lookup reference only.
type Stall struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Location  string    `json:"location" gorm:"size:255;not null"`
	Cuisine   string    `json:"cuisine" gorm:"size:100;not null;index"`
	CenterID  *uint     `json:"center_id,omitempty" gorm:"index"`
	ImageURL  string    `json:"image_url" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Center *HawkerCenter `json:"-" gorm:"foreignKey:CenterID;constraint:OnDelete:RESTRICT"`
}

// FoodItem is a dish sold by a stall.
type FoodItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	StallID     uint            `json:"stall_id" gorm:"not null;index"`
	ImageURL    string          `json:"image_url" gorm:"size:255"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Stall *Stall `json:"-" gorm:"foreignKey:StallID;constraint:OnDelete:CASCADE"`
}
