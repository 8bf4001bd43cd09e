package services

import (
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

// Level pairs a current quantity with the minimum it is measured against.
type Level struct {
	Current float64
	Minimum float64
}

// LevelSummary is the count/sum/threshold aggregation shared by the record
// views: total records, summed quantity, and how many records sit below
// their minimum.
type LevelSummary struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Low   int     `json:"low"`
}

// BelowMinimum is the per-record threshold flag.
func BelowMinimum(level Level) bool {
	return level.Current < level.Minimum
}

// SummarizeLevels aggregates a collection of levels.
func SummarizeLevels(levels []Level) LevelSummary {
	summary := LevelSummary{Count: len(levels)}
	for _, level := range levels {
		summary.Sum += level.Current
		if BelowMinimum(level) {
			summary.Low++
		}
	}
	return summary
}

// StockLevels projects inventory items onto their stock/min-stock levels.
func StockLevels(items []models.InventoryItem) []Level {
	levels := make([]Level, 0, len(items))
	for _, item := range items {
		levels = append(levels, Level{Current: item.Stock, Minimum: item.MinStock})
	}
	return levels
}

// CountByStatus tallies appointments per status.
func CountByStatus(appointments []models.Appointment) map[string]int {
	counts := make(map[string]int)
	for _, appointment := range appointments {
		counts[appointment.Status]++
	}
	return counts
}
