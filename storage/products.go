package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/MayerAttila/Gifty/models"
)

// ProductRepository owns the gift-idea collection slot. Referential
// integrity against members is deliberately not enforced; orphaned
// products survive loads untouched.
type ProductRepository interface {
	Load() ([]models.MemberProduct, error)
	Save(products []models.MemberProduct) error
}

type productRepository struct {
	db       *gorm.DB
	notifier Notifier
}

func NewProductRepository(db *gorm.DB, notifier Notifier) ProductRepository {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &productRepository{db: db, notifier: notifier}
}

func (r *productRepository) Load() ([]models.MemberProduct, error) {
	raw, err := readSlot(r.db, MemberProductsKey)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if len(raw) == 0 {
		return []models.MemberProduct{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("⚠️ Products slot is not a JSON array, starting empty: %v", err)
		return []models.MemberProduct{}, nil
	}

	products := make([]models.MemberProduct, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		product, err := models.ReviveMemberProduct(entry)
		if err != nil {
			dropped++
			continue
		}
		products = append(products, *product)
	}
	if dropped > 0 {
		log.Printf("⚠️ Dropped %d malformed product record(s) during load", dropped)
	}
	return products, nil
}

func (r *productRepository) Save(products []models.MemberProduct) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := writeSlot(r.db, MemberProductsKey, payload); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	r.notifier.StorageChanged(MemberProductsKey)
	return nil
}
