package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var record T
	if err := db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(id)
		}
		return nil, StoreError(err)
	}
	return &record, nil
}

func listAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	records := make([]T, 0)
	if err := db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, StoreError(err)
	}
	return records, nil
}

// inTx runs fn in one transaction. Any error rolls the transaction back;
// errors that are not already ledger errors surface as StoreError.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	if _, ok := KindOf(err); ok {
		return err
	}
	return StoreError(err)
}

func create[T any](ctx context.Context, db *gorm.DB, record *T) error {
	return inTx(ctx, db, func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// replace loads id, lets mutate change it and saves every column.
func replace[T any](ctx context.Context, db *gorm.DB, id uint, mutate func(*T) error) (*T, error) {
	var updated *T
	err := inTx(ctx, db, func(tx *gorm.DB) error {
		record, err := findByID[T](ctx, tx, id)
		if err != nil {
			return err
		}
		if err := mutate(record); err != nil {
			return err
		}
		if err := tx.Save(record).Error; err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// remove deletes id and returns the record as it was.
func remove[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var removed *T
	err := inTx(ctx, db, func(tx *gorm.DB) error {
		record, err := findByID[T](ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(record).Error; err != nil {
			return err
		}
		removed = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
