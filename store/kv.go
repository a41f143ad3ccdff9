package store

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"folio/models"
)

// KV is the persistence boundary for the stores. The portfolio document, the
// admin password and the admin email each live under an independent key.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// GormKV persists entries as rows in the storage_entries table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(key string) (string, bool, error) {
	var entry models.StorageEntry
	err := g.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (g *GormKV) Put(key, value string) error {
	return g.db.Save(&models.StorageEntry{Key: key, Value: value}).Error
}

// MemoryKV is an in-memory KV used in tests.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryKV) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}
