// Package kvstore provides the GORM-backed PostgreSQL implementation of the
// key-value store port. Every entity family lives in one table keyed by a
// prefixed string; conditional writes use a version column checked in the
// UPDATE itself, so the database resolves write races without explicit
// transactions.
package kvstore

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"darkstore/internal/core/ports"
	"darkstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JSONB stores raw JSON in a PostgreSQL jsonb column.
type JSONB json.RawMessage

// Value implements driver.Valuer.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONB) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return nil
}

// RecordDTO represents one row of the key-value table.
type RecordDTO struct {
	Key     string `gorm:"primaryKey;size:512"`
	Value   JSONB  `gorm:"type:jsonb;not null"`
	Version int64  `gorm:"not null"`
}

// TableName specifies the database table name for key-value records.
func (RecordDTO) TableName() string {
	return "kv_records"
}

// Store implements ports.KVStore on PostgreSQL.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new PostgreSQL key-value store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the key-value table schema.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&RecordDTO{})
}

// Get retrieves the record stored under key.
func (s *Store) Get(ctx context.Context, key string) (ports.Record, error) {
	var dto RecordDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Record{}, errs.NewObjectNotFoundError("key", key)
		}
		return ports.Record{}, err
	}

	return toRecord(dto), nil
}

// Set writes value under key unconditionally via an upsert that increments the
// version on conflict, and returns the resulting version.
func (s *Store) Set(ctx context.Context, key string, value json.RawMessage) (int64, error) {
	dto := RecordDTO{Key: key, Value: JSONB(value), Version: 1}

	err := s.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":   JSONB(value),
				"version": gorm.Expr("kv_records.version + 1"),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "version"}}},
	).Create(&dto).Error
	if err != nil {
		return 0, err
	}

	return dto.Version, nil
}

// Swap writes value under key only if the stored version equals
// expectedVersion. Inserts use ON CONFLICT DO NOTHING and updates check the
// version in the WHERE clause, so of several racing writers the database lets
// exactly one through.
func (s *Store) Swap(ctx context.Context, key string, value json.RawMessage, expectedVersion int64) (int64, error) {
	if expectedVersion == ports.InsertVersion {
		dto := RecordDTO{Key: key, Value: JSONB(value), Version: 1}
		result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&dto)
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, errs.NewConcurrentModificationError(key, expectedVersion)
		}
		return 1, nil
	}

	newVersion := expectedVersion + 1
	result := s.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("key = ? AND version = ?", key, expectedVersion).
		Updates(map[string]any{"value": JSONB(value), "version": newVersion})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewConcurrentModificationError(key, expectedVersion)
	}

	return newVersion, nil
}

// Delete removes the record stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&RecordDTO{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("key", key)
	}

	return nil
}

// ScanByPrefix retrieves every record whose key starts with prefix.
// Prefixes are fixed entity-family constants and contain no LIKE wildcards.
func (s *Store) ScanByPrefix(ctx context.Context, prefix string) ([]ports.Record, error) {
	var dtos []RecordDTO
	if err := s.db.WithContext(ctx).Find(&dtos, "key LIKE ?", prefix+"%").Error; err != nil {
		return nil, err
	}

	records := make([]ports.Record, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}

	return records, nil
}

func toRecord(dto RecordDTO) ports.Record {
	return ports.Record{
		Key:     dto.Key,
		Value:   append(json.RawMessage(nil), dto.Value...),
		Version: dto.Version,
	}
}
