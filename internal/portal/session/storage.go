package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Storage keys for the session record. Everything the portal remembers
// between runs lives under these.
const (
	KeyToken              = "aos_token"
	KeyUser               = "aos_user"
	KeyMustChangePassword = "aos_must_change_password"
	KeyLanguage           = "aos_language"
)

// Storage is the durable key/value store behind the session. Writes of
// multiple keys are atomic.
type Storage interface {
	Get(key string) (string, bool, error)
	SetAll(entries map[string]string) error
	DeleteAll(keys ...string) error
}

type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (kvEntry) TableName() string {
	return "session_store"
}

// SQLiteStorage keeps the session record in a single-table sqlite database.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage opens (and creates, if needed) the portal state database
// at path. ":memory:" gives an ephemeral store.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *SQLiteStorage) SetAll(entries map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&kvEntry{Key: key, Value: value}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) DeleteAll(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&kvEntry{}, "key IN ?", keys).Error
	})
}
