package storage

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys carried over from the original browser-storage schema so
// exported data stays recognizable.
const (
	MembersKey        = "gifty:members"
	MemberProductsKey = "gifty:member-products"
)

// StorageSlot mirrors the browser-storage model the data started in:
// one key, one JSON-encoded collection. Writes are last-write-wins.
type StorageSlot struct {
	SlotKey   string         `gorm:"column:slot_key;primaryKey;size:255"`
	Payload   datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}

func (StorageSlot) TableName() string {
	return "storage_slots"
}

// readSlot returns the raw payload for a key, or nil when the slot has
// never been written.
func readSlot(db *gorm.DB, key string) (json.RawMessage, error) {
	var slot StorageSlot
	err := db.First(&slot, "slot_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(slot.Payload), nil
}

// writeSlot upserts the payload for a key.
func writeSlot(db *gorm.DB, key string, payload []byte) error {
	slot := StorageSlot{SlotKey: key, Payload: payload, UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&slot).Error
}
