package services

import (
	"errors"
	"sort"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

// ErrInvalidFilter is returned when the status filter is not one of
// all/pending/confirmed/completed/cancelled.
var ErrInvalidFilter = errors.New("invalid status filter")

// FilterAll keeps every appointment regardless of status.
const FilterAll = "all"

// DateGroup is one day of the scheduling view: a date key plus the
// appointments of that day ordered by ascending time. Groups are derived on
// every projection and never mutated.
type DateGroup struct {
	DateKey      string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// Project derives the grouped scheduling view from a flat appointment list.
// Appointments are filtered by status, partitioned by date in first-seen
// order of distinct dates, and sorted within each group by lexicographic
// comparison of the HH:MM time string. The projection is deterministic and
// side-effect free; an empty filtered input yields an empty group slice.
func Project(appointments []models.Appointment, filter string) ([]DateGroup, error) {
	if filter != FilterAll && !models.ValidStatus(filter) {
		return nil, ErrInvalidFilter
	}

	groups := []DateGroup{}
	index := make(map[string]int)
	for _, appointment := range appointments {
		if filter != FilterAll && appointment.Status != filter {
			continue
		}
		i, seen := index[appointment.Date]
		if !seen {
			i = len(groups)
			index[appointment.Date] = i
			groups = append(groups, DateGroup{DateKey: appointment.Date})
		}
		groups[i].Appointments = append(groups[i].Appointments, appointment)
	}

	for i := range groups {
		appts := groups[i].Appointments
		sort.SliceStable(appts, func(a, b int) bool {
			return appts[a].Time < appts[b].Time
		})
	}
	return groups, nil
}
