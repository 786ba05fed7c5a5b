package list

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
)

// Repository encapsulates shopping list persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a list repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateList inserts a new shopping list.
func (r *Repository) CreateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	if err := r.db.WithContext(ctx).Create(&list).Error; err != nil {
		return models.ShoppingList{}, err
	}
	return list, nil
}

// FindList loads a list with its entries ordered by insertion time.
func (r *Repository) FindList(ctx context.Context, listID uuid.UUID) (models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&list, "id = ?", listID).
		Error
	if err != nil {
		return models.ShoppingList{}, err
	}
	return list, nil
}

// DeleteList removes a list; entries cascade at the database level.
func (r *Repository) DeleteList(ctx context.Context, listID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShoppingList{}, "id = ?", listID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ItemsForList returns all entries on a list in a stable order.
func (r *Repository) ItemsForList(ctx context.Context, listID uuid.UUID) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC, id ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindItem loads one entry scoped to its list.
func (r *Repository) FindItem(ctx context.Context, listID, itemID uuid.UUID) (models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND list_id = ?", itemID, listID).
		Error
	if err != nil {
		return models.ShoppingListItem{}, err
	}
	return item, nil
}

// CreateItem inserts a new entry.
func (r *Repository) CreateItem(ctx context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.ShoppingListItem{}, err
	}
	return item, nil
}

// SaveItem persists entry mutations.
func (r *Repository) SaveItem(ctx context.Context, item models.ShoppingListItem) (models.ShoppingListItem, error) {
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return models.ShoppingListItem{}, err
	}
	return item, nil
}

// DeleteItem removes one entry scoped to its list.
func (r *Repository) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		Delete(&models.ShoppingListItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
