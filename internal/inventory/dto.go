package inventory

import (
	"github.com/stockroomhq/inventory-backend/pkg/db/models"
)

// RecordDTO is the serialized form of one stock record. The condition
// travels as its symbolic name and a missing description is null, not
// an empty string.
type RecordDTO struct {
	ID            uint    `json:"id"`
	ProductID     int     `json:"product_id"`
	Quantity      int     `json:"quantity"`
	RestockLevel  int     `json:"restock_level"`
	RestockAmount int     `json:"restock_amount"`
	Condition     string  `json:"condition"`
	Description   *string `json:"description"`
}

// NewRecordDTO maps a persisted record field-for-field.
func NewRecordDTO(record *models.StockRecord) RecordDTO {
	return RecordDTO{
		ID:            record.ID,
		ProductID:     record.ProductID,
		Quantity:      record.Quantity,
		RestockLevel:  record.RestockLevel,
		RestockAmount: record.RestockAmount,
		Condition:     record.Condition.String(),
		Description:   record.Description,
	}
}
