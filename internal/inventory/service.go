package inventory

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/stockroomhq/inventory-backend/pkg/db"
	"github.com/stockroomhq/inventory-backend/pkg/db/models"
	"github.com/stockroomhq/inventory-backend/pkg/enums"
	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
)

// ListInput carries the raw listing filters from the query string.
// Condition is kept as typed text; an unknown name matches nothing
// rather than failing the request.
type ListInput struct {
	ProductID      *int
	Condition      string
	Quantity       *int
	QuantityLT     *int
	QuantityGT     *int
	RestockLevel   *int
	RestockLevelLT *int
	RestockLevelGT *int
	Query          string
}

type Service interface {
	Create(ctx context.Context, payload RecordPayload) (*RecordDTO, error)
	Get(ctx context.Context, id uint) (*RecordDTO, error)
	Update(ctx context.Context, id uint, payload RecordPayload) (*RecordDTO, error)
	Delete(ctx context.Context, id uint) error
	Restock(ctx context.Context, id uint) (*RecordDTO, error)
	List(ctx context.Context, input ListInput) ([]RecordDTO, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service requires a repository")
	}
	if dbClient == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory service requires a db client")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// Create inserts a new record. Any caller-supplied id is discarded and
// a second record for an already-tracked product_id is rejected.
func (s *service) Create(ctx context.Context, payload RecordPayload) (*RecordDTO, error) {
	record := &models.StockRecord{}
	if err := payload.apply(record); err != nil {
		return nil, err
	}
	record.ID = 0

	existing, err := s.repo.FindByProductID(ctx, record.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("looking up product_id %d", record.ProductID))
	}
	if existing != nil {
		return nil, pkgerrors.New(
			pkgerrors.CodeConflict,
			fmt.Sprintf("Inventory record with product_id '%d' already exists.", record.ProductID),
		)
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("creating record for product_id %d", record.ProductID))
	}

	dto := NewRecordDTO(record)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id uint) (*RecordDTO, error) {
	record, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewRecordDTO(record)
	return &dto, nil
}

// Update replaces every writable field of an existing record. The id
// always comes from the URL, not the payload, and the stored
// product_id is overwritten without a uniqueness recheck.
func (s *service) Update(ctx context.Context, id uint, payload RecordPayload) (*RecordDTO, error) {
	record, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payload.apply(record); err != nil {
		return nil, err
	}
	record.ID = id

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	dto := NewRecordDTO(record)
	return &dto, nil
}

// Delete removes the record if present. Deleting an unknown id
// succeeds so the operation stays idempotent.
func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).DeleteByID(ctx, id)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("deleting record %d", id))
	}
	return nil
}

// Restock raises quantity by the record's own restock_amount.
func (s *service) Restock(ctx context.Context, id uint) (*RecordDTO, error) {
	record, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Quantity += record.RestockAmount

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	dto := NewRecordDTO(record)
	return &dto, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]RecordDTO, error) {
	filters := ListFilters{
		ProductID:      input.ProductID,
		Quantity:       input.Quantity,
		QuantityLT:     input.QuantityLT,
		QuantityGT:     input.QuantityGT,
		RestockLevel:   input.RestockLevel,
		RestockLevelLT: input.RestockLevelLT,
		RestockLevelGT: input.RestockLevelGT,
		Query:          input.Query,
	}
	if raw := strings.TrimSpace(input.Condition); raw != "" {
		condition, err := enums.ParseCondition(strings.ToUpper(raw))
		if err != nil {
			// Unknown condition names match nothing.
			return []RecordDTO{}, nil
		}
		filters.Condition = &condition
	}

	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing inventory records")
	}

	dtos := make([]RecordDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, NewRecordDTO(&records[i]))
	}
	return dtos, nil
}

func (s *service) findByID(ctx context.Context, id uint) (*models.StockRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(
				pkgerrors.CodeNotFound,
				fmt.Sprintf("Inventory record with id '%d' was not found.", id),
			)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("looking up record %d", id))
	}
	return record, nil
}

// save re-validates the condition and writes the record inside a
// transaction. The condition check guards rows mutated outside the
// payload path, restock in particular.
func (s *service) save(ctx context.Context, record *models.StockRecord) error {
	if !record.Condition.IsValid() {
		return pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("invalid attribute: %s", record.Condition),
		).WithDetails(map[string]any{
			"reason": "invalid_enum",
			"field":  "condition",
		})
	}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Update(ctx, record)
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("saving record %d", record.ID))
	}
	return nil
}
