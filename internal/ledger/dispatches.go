package ledger

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dairyledger/models"
)

// DispatchService records daily product dispatch counts. Every write stamps
// the record with the server's current date.
type DispatchService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDispatchService(db *gorm.DB) *DispatchService {
	return &DispatchService{db: db, now: time.Now}
}

func (s *DispatchService) Create(ctx context.Context, in DispatchInput) (*models.ProductDispatch, error) {
	var dispatch models.ProductDispatch
	in.applyTo(&dispatch, s.now())
	if err := create(ctx, s.db, &dispatch); err != nil {
		return nil, err
	}
	return &dispatch, nil
}

func (s *DispatchService) Get(ctx context.Context, id uint) (*models.ProductDispatch, error) {
	return findByID[models.ProductDispatch](ctx, s.db, id)
}

func (s *DispatchService) List(ctx context.Context) ([]models.ProductDispatch, error) {
	return listAll[models.ProductDispatch](ctx, s.db)
}

// Update overwrites the quantities present in in and resets the date to today.
func (s *DispatchService) Update(ctx context.Context, id uint, in DispatchInput) (*models.ProductDispatch, error) {
	return replace(ctx, s.db, id, func(dispatch *models.ProductDispatch) error {
		in.applyTo(dispatch, s.now())
		return nil
	})
}

func (s *DispatchService) Delete(ctx context.Context, id uint) (*models.ProductDispatch, error) {
	return remove[models.ProductDispatch](ctx, s.db, id)
}
