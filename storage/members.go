package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/MayerAttila/Gifty/models"
)

// MemberRepository owns the member collection slot. Load is best-effort
// and never fails on individual bad records; Save rewrites the whole
// collection and fires the change notifier.
type MemberRepository interface {
	Load() ([]models.Member, error)
	Save(members []models.Member) error
}

type memberRepository struct {
	db       *gorm.DB
	notifier Notifier
}

func NewMemberRepository(db *gorm.DB, notifier Notifier) MemberRepository {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &memberRepository{db: db, notifier: notifier}
}

func (r *memberRepository) Load() ([]models.Member, error) {
	raw, err := readSlot(r.db, MembersKey)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	if len(raw) == 0 {
		return []models.Member{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A slot that is not an array yields an empty collection, same
		// policy as a missing one.
		log.Printf("⚠️ Members slot is not a JSON array, starting empty: %v", err)
		return []models.Member{}, nil
	}

	members := make([]models.Member, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		member, err := models.ReviveMember(entry)
		if err != nil {
			dropped++
			continue
		}
		members = append(members, *member)
	}
	if dropped > 0 {
		log.Printf("⚠️ Dropped %d malformed member record(s) during load", dropped)
	}
	return members, nil
}

func (r *memberRepository) Save(members []models.Member) error {
	payload, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	if err := writeSlot(r.db, MembersKey, payload); err != nil {
		return fmt.Errorf("save members: %w", err)
	}
	r.notifier.StorageChanged(MembersKey)
	return nil
}
