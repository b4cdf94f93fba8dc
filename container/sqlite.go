package container

import (
	"errors"
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/plotvault/plotvault/core"
)

// entry is the single table of a SQLite container. The auto-increment id
// doubles as first-write order, so Keys can replay insertions without a
// separate bookkeeping column.
type entry struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;size:500;not null"`
	Value []byte
}

func (entry) TableName() string { return "entries" }

// SQLite is the durable single-file Container backend, built on gorm over the
// pure-Go glebarez driver so no cgo toolchain is needed. One file on disk is
// one container.
type SQLite struct {
	db       *gorm.DB
	readOnly bool
}

// OpenSQLite opens (or creates) the container file at path according to mode:
//
//   - core.ModeUpdate opens an existing file or creates a fresh one.
//   - core.ModeCreate removes any existing file first.
//   - core.ModeRead fails when the file is missing, opens it read-only and
//     verifies the entries table so foreign databases are rejected at open.
func OpenSQLite(path string, mode core.OpenMode) (*SQLite, error) {
	dsn := path
	readOnly := false

	switch mode {
	case core.ModeCreate:
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reset sqlite container %q: %w", path, err)
		}
	case core.ModeRead:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open sqlite container: %w", err)
		}
		// The file: prefix turns on SQLite URI handling for mode=ro.
		dsn = "file:" + path + "?mode=ro"
		readOnly = true
	case core.ModeUpdate, "":
		// open-or-create, the default
	default:
		return nil, fmt.Errorf("open sqlite container %q: unknown mode %q", path, mode)
	}

	// Record misses are routine lookups here and gorm's default logger
	// prints each one as an error line, so keep it silent.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite container %q: %w", path, err)
	}

	if readOnly {
		if !db.Migrator().HasTable(&entry{}) {
			_ = closeGorm(db)
			return nil, fmt.Errorf("open sqlite container %q: no entries table", path)
		}
	} else if err := db.AutoMigrate(&entry{}); err != nil {
		_ = closeGorm(db)
		return nil, fmt.Errorf("migrate sqlite container %q: %w", path, err)
	}

	return &SQLite{db: db, readOnly: readOnly}, nil
}

// Put stores (or overwrites) the bytes for the given key. Overwrites update
// the existing row in place, which keeps its id and therefore its Keys
// position.
func (s *SQLite) Put(key string, data []byte) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	var existing entry
	err := s.db.Where("key = ?", key).First(&existing).Error
	switch {
	case err == nil:
		return s.db.Model(&existing).Update("value", cp).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.Create(&entry{Key: key, Value: cp}).Error
	default:
		return err
	}
}

// Get returns the stored bytes or core.ErrNotFound. The driver materializes
// a fresh slice per row, so the result is already a private copy.
func (s *SQLite) Get(key string) ([]byte, error) {
	var e entry
	if err := s.db.Where("key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

// Has reports whether the key currently holds an entry.
func (s *SQLite) Has(key string) (bool, error) {
	var n int64
	if err := s.db.Model(&entry{}).Where("key = ?", key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Keys returns every key ordered by insertion id, i.e. first-write order.
func (s *SQLite) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&entry{}).Order("id ASC").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return closeGorm(s.db)
}

func closeGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
