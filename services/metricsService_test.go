package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

func TestBelowMinimum(t *testing.T) {
	assert.True(t, BelowMinimum(Level{Current: 95, Minimum: 100}))
	assert.False(t, BelowMinimum(Level{Current: 100, Minimum: 100}))
	assert.False(t, BelowMinimum(Level{Current: 450, Minimum: 200}))
}

func TestSummarizeLevels(t *testing.T) {
	summary := SummarizeLevels([]Level{
		{Current: 450, Minimum: 200},
		{Current: 95, Minimum: 100},
		{Current: 30, Minimum: 50},
	})
	assert.Equal(t, LevelSummary{Count: 3, Sum: 575, Low: 2}, summary)
}

func TestSummarizeLevelsEmpty(t *testing.T) {
	assert.Equal(t, LevelSummary{}, SummarizeLevels(nil))
}

func TestStockLevels(t *testing.T) {
	levels := StockLevels([]models.InventoryItem{
		{ID: 1, Stock: 450, MinStock: 200},
		{ID: 2, Stock: 95, MinStock: 100},
	})
	assert.Equal(t, []Level{{Current: 450, Minimum: 200}, {Current: 95, Minimum: 100}}, levels)
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]models.Appointment{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusConfirmed},
		{ID: 3, Status: models.StatusConfirmed},
	})
	assert.Equal(t, map[string]int{
		models.StatusPending:   1,
		models.StatusConfirmed: 2,
	}, counts)
}
