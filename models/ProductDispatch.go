package models

import "gorm.io/datatypes"

// ProductDispatch is a daily snapshot of dispatched quantities. Date is
// always the server date of the last write.
type ProductDispatch struct {
	ID     uint `gorm:"primaryKey"`
	Milk   *int
	Curd   *int
	Paneer *int
	Butter *int
	Ghee   *int
	Honey  *int
	Cheese *int
	Date   datatypes.Date
}

func (ProductDispatch) TableName() string {
	return "products_dispatched"
}
