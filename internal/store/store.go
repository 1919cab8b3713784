package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Store is the single-table data access layer over the inventory file.
// Every CLI invocation opens one Store and closes it before exiting.
type Store struct {
	db   *gorm.DB
	path string
}

// Open connects to the SQLite file at path, creating its directory if
// needed. It never creates the inventory table; see Reset.
func Open(path string, verbose bool) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	level := logger.Silent
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Store{db: db, path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Reset drops the inventory table and creates it empty.
func (s *Store) Reset(ctx context.Context) error {
	m := s.db.WithContext(ctx).Migrator()
	if err := m.DropTable(&Item{}); err != nil {
		return fmt.Errorf("drop inventory: %w", err)
	}
	if err := m.CreateTable(&Item{}); err != nil {
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// BulkInsert writes items in one transaction, in order.
func (s *Store) BulkInsert(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

// List returns all items ordered by category then name. A non-empty
// category keeps only rows whose category contains it.
func (s *Store) List(ctx context.Context, category string) ([]Item, error) {
	q := s.db.WithContext(ctx).Model(&Item{})
	if category != "" {
		q = q.Where(`category LIKE ? ESCAPE '\'`, containsPattern(category))
	}

	var items []Item
	if err := q.Order("category, name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Search returns items whose name contains query, ignoring case.
func (s *Store) Search(ctx context.Context, query string) ([]Item, error) {
	var items []Item
	err := s.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("category, name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Item, error) {
	return get(s.db.WithContext(ctx), id)
}

// Add inserts item and fills in its assigned ID.
func (s *Store) Add(ctx context.Context, item *Item) error {
	item.ID = 0
	return s.db.WithContext(ctx).Create(item).Error
}

// Remove deletes the item with id and returns what was deleted.
func (s *Store) Remove(ctx context.Context, id int64) (Item, error) {
	var removed Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := get(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&Item{}, item.ID).Error; err != nil {
			return err
		}
		removed = item
		return nil
	})
	return removed, err
}

// Update applies the set fields of p to the item with id. A missing id
// wins over an empty patch.
func (s *Store) Update(ctx context.Context, id int64, p Patch) (Item, error) {
	var updated Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := get(tx, id)
		if err != nil {
			return err
		}
		if p.Empty() {
			return ErrNothingToUpdate
		}
		if err := tx.Model(&item).Updates(p.columns()).Error; err != nil {
			return err
		}
		updated, err = get(tx, id)
		return err
	})
	return updated, err
}

// CountByCategory groups the table by category, sorted by category.
func (s *Store) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := s.db.WithContext(ctx).
		Model(&Item{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func get(db *gorm.DB, id int64) (Item, error) {
	var item Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a LIKE pattern matching it as a literal
// substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
