package db

import (
	"gorm.io/gorm"
)

// NewestFirst orders by created_at descending, breaking ties on the creation
// sequence so rows created in the same instant keep a stable order.
//
//	db.Model(&DataRequestModel{}).Scopes(db.NewestFirst()).Find(&rows)
func NewestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("created_seq DESC")
	}
}

// OldestFirst is the ascending counterpart of NewestFirst (insertion order).
func OldestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("created_seq ASC")
	}
}

// WhereIn restricts column to the given values. An empty set matches nothing.
func WhereIn(column string, values []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where(column+" IN ?", values)
	}
}
