// Package storage is the portal's local persistence: a tiny key-value file
// backed by sqlite. The only durable client-side state is the selection cart,
// which lives under a single key.
package storage

import (
	"errors"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// KV is a single-writer-at-a-time key-value store. Writes from other
// processes race under last-write-wins; within this process a mutex keeps
// each write atomic.
type KV struct {
	mu sync.Mutex
	db *gorm.DB
}

// Open creates or opens the store file at path.
func Open(path string) (*KV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

// Get returns the value stored under key. The second result is false when the
// key has never been written.
func (s *KV) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Put writes value under key, replacing any previous value in one statement.
func (s *KV) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// Close releases the underlying database handle.
func (s *KV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
