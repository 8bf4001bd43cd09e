package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

const inventoryPath = "/api/inventory/"

// InventoryRepository reads and creates stock records in the record store.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// GetAll fetches the inventory collection and normalizes every record.
func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	data, err := database.Store.GetList(ctx, inventoryPath)
	if err != nil {
		return nil, err
	}
	items, err := models.DecodeInventory(data)
	if err != nil {
		return nil, errors.Wrapf(database.ErrFetch, "%v", err)
	}
	return items, nil
}

// Create posts a new stock record and returns the created record body.
func (r *InventoryRepository) Create(ctx context.Context, payload models.CreateInventoryItem) (json.RawMessage, error) {
	return database.Store.PostJSON(ctx, inventoryPath, payload)
}
