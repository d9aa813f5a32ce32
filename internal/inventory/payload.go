package inventory

import (
	"fmt"

	"github.com/stockroomhq/inventory-backend/pkg/db/models"
	"github.com/stockroomhq/inventory-backend/pkg/enums"
	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
)

// RecordPayload is the write shape accepted by create and update.
// Every numeric attribute must be present; condition defaults to NEW
// when omitted and description may be omitted or null. A caller may
// send an id but it is never trusted, create assigns its own and
// update takes the id from the URL.
type RecordPayload struct {
	ID            *uint   `json:"id"`
	ProductID     *int    `json:"product_id" validate:"required"`
	Quantity      *int    `json:"quantity" validate:"required"`
	RestockLevel  *int    `json:"restock_level" validate:"required"`
	RestockAmount *int    `json:"restock_amount" validate:"required"`
	Condition     *string `json:"condition"`
	Description   *string `json:"description"`
}

// apply overwrites every writable field on record from the payload.
// The id is left untouched.
func (p RecordPayload) apply(record *models.StockRecord) error {
	condition := enums.ConditionNew
	if p.Condition != nil {
		parsed, err := enums.ParseCondition(*p.Condition)
		if err != nil {
			return pkgerrors.New(
				pkgerrors.CodeValidation,
				fmt.Sprintf("invalid attribute: %s", *p.Condition),
			).WithDetails(map[string]any{
				"reason": "invalid_enum",
				"field":  "condition",
			})
		}
		condition = parsed
	}

	record.ProductID = *p.ProductID
	record.Quantity = *p.Quantity
	record.RestockLevel = *p.RestockLevel
	record.RestockAmount = *p.RestockAmount
	record.Condition = condition
	record.Description = p.Description
	return nil
}
