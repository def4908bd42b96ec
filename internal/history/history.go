// Package history keeps a log of evaluated expressions in a SQLite database.
package history

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/soft_delete"
)

// Entry is one evaluation.
type Entry struct {
	ID int64 `gorm:"primaryKey"`
	// Expr is the text as the user gave it, before substitution.
	Expr string
	// X is the value substituted for the variable, if any.
	X      *float64
	Result float64
	// Code is the name of the evaluation's error code, "Success" when it
	// succeeded.
	Code      string `gorm:"index:idx_code"`
	CreatedAt int64  `gorm:"index:idx_created_at"`
	/* 0 live 1 cleared */
	Deleted soft_delete.DeletedAt `gorm:"softDelete:flag;default:0"`
}

func (Entry) TableName() string {
	return "history"
}

// Store is an open history database.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrating history %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Record adds e to the history. The ID is assigned by the database, and a
// zero CreatedAt is set to the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	e.ID = 0
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("recording %q: %w", e.Expr, err)
	}
	return nil
}

// Recent returns up to n live entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	var es []Entry
	err := s.db.WithContext(ctx).Model(&Entry{}).
		Order("created_at desc").Order("id desc").
		Limit(n).Find(&es).Error
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return es, nil
}

// Clear marks every entry deleted. Cleared entries stay in the database but
// are no longer returned by Recent.
func (s *Store) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Where("`deleted` = ?", 0).Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
