package inventory

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/stockroomhq/inventory-backend/pkg/db/models"
	"github.com/stockroomhq/inventory-backend/pkg/enums"
	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
)

// ListFilters narrows a listing. Nil pointers mean "not filtered";
// every set filter is ANDed into the query.
type ListFilters struct {
	ProductID      *int
	Condition      *enums.Condition
	Quantity       *int
	QuantityLT     *int
	QuantityGT     *int
	RestockLevel   *int
	RestockLevelLT *int
	RestockLevelGT *int
	Query          string
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory repository requires a db handle")
	}
	return &Repository{db: db}, nil
}

// WithTx returns a copy of the repository bound to tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*models.StockRecord, error) {
	var record models.StockRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByProductID returns the first record carrying productID, or
// (nil, nil) when none exists.
func (r *Repository) FindByProductID(ctx context.Context, productID int) (*models.StockRecord, error) {
	var record models.StockRecord
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *Repository) Create(ctx context.Context, record *models.StockRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update persists record in full. The record must already carry a
// store-assigned id.
func (r *Repository) Update(ctx context.Context, record *models.StockRecord) error {
	if record.ID == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "update called with empty id")
	}
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteByID removes the record if it exists. Deleting an absent id is
// not an error.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.StockRecord{}, id).Error
}

func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.StockRecord, error) {
	qb := r.db.WithContext(ctx).Model(&models.StockRecord{})

	if filters.ProductID != nil {
		qb = qb.Where("product_id = ?", *filters.ProductID)
	}
	if filters.Condition != nil {
		qb = qb.Where("condition = ?", filters.Condition.String())
	}
	if filters.Quantity != nil {
		qb = qb.Where("quantity = ?", *filters.Quantity)
	}
	if filters.QuantityLT != nil {
		qb = qb.Where("quantity < ?", *filters.QuantityLT)
	}
	if filters.QuantityGT != nil {
		qb = qb.Where("quantity > ?", *filters.QuantityGT)
	}
	if filters.RestockLevel != nil {
		qb = qb.Where("restock_level = ?", *filters.RestockLevel)
	}
	if filters.RestockLevelLT != nil {
		qb = qb.Where("restock_level < ?", *filters.RestockLevelLT)
	}
	if filters.RestockLevelGT != nil {
		qb = qb.Where("restock_level > ?", *filters.RestockLevelGT)
	}
	if search := strings.TrimSpace(filters.Query); search != "" {
		qb = qb.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var records []models.StockRecord
	if err := qb.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
