package store

import (
	"encoding/json"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is one persisted document in the kv_records table.
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte `gorm:"type:longblob"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// DBStore keeps the same key-value contract in MySQL, for deployments that
// want a real database behind the store. Selected with STORE_DSN.
type DBStore struct {
	notifier
	db *gorm.DB
}

func NewDBStore(dsn string) (*DBStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Load(key string, into any) (bool, error) {
	raw, ok := s.LoadRaw(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *DBStore) LoadRaw(key string) ([]byte, bool) {
	var rec KVRecord
	if err := s.db.First(&rec, "`key` = ?", key).Error; err != nil {
		return nil, false
	}
	return rec.Value, true
}

func (s *DBStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	rec := KVRecord{Key: key, Value: data}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return err
	}

	s.notify(key)
	return nil
}

func (s *DBStore) Delete(key string) error {
	if err := s.db.Delete(&KVRecord{}, "`key` = ?", key).Error; err != nil {
		return err
	}

	s.notify(key)
	return nil
}
