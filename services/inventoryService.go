package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

type InventoryService struct {
	repository *repositories.InventoryRepository
}

func NewInventoryService(repository *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repository: repository}
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repository.GetAll(ctx)
}

func (s *InventoryService) Create(ctx context.Context, payload models.CreateInventoryItem) (json.RawMessage, error) {
	if err := utils.ValidateInventoryCreate(payload); err != nil {
		return nil, err
	}
	return s.repository.Create(ctx, payload)
}

// Search keeps the items whose name or category contains the query,
// case-insensitively. An empty query keeps everything.
func Search(items []models.InventoryItem, query string) []models.InventoryItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	matched := []models.InventoryItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Category), query) {
			matched = append(matched, item)
		}
	}
	return matched
}
