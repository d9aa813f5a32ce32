package models

import (
	"time"

	"github.com/stockroomhq/inventory-backend/pkg/enums"
)

// StockRecord is one row of tracked inventory for a product.
type StockRecord struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID     int             `gorm:"column:product_id;not null;index"`
	Quantity      int             `gorm:"column:quantity;not null;default:0"`
	RestockLevel  int             `gorm:"column:restock_level;not null;default:0"`
	RestockAmount int             `gorm:"column:restock_amount;not null;default:0"`
	Condition     enums.Condition `gorm:"column:condition;type:text;not null;default:NEW"`
	Description   *string         `gorm:"column:description"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table to the name the migrations create.
func (StockRecord) TableName() string {
	return "inventory"
}
