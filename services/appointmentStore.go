package services

import (
	"context"
	"log"
	"sync"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
)

// AppointmentStore owns the canonical appointment list for the running
// service. It is the only component allowed to replace that list: handlers
// read snapshots, and the scheduling workflow triggers Invalidate after a
// successful create. There is no background polling and no diffing; every
// refresh is a full refetch.
type AppointmentStore struct {
	repository *repositories.AppointmentRepository

	mu           sync.Mutex
	appointments []models.Appointment
	fetchFailed  bool
	loaded       bool
}

func NewAppointmentStore(repository *repositories.AppointmentRepository) *AppointmentStore {
	return &AppointmentStore{repository: repository}
}

// FetchAll replaces the held list with a fresh read of the appointment
// collection. On failure the list becomes empty and the error flag is set;
// stale data is never shown after a failed refresh.
func (s *AppointmentStore) FetchAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.repository.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	if err != nil {
		log.Printf("Appointment fetch failed: %v", err)
		s.appointments = nil
		s.fetchFailed = true
		return nil, err
	}
	s.appointments = appointments
	s.fetchFailed = false
	return append([]models.Appointment(nil), appointments...), nil
}

// Invalidate discards the held list by re-triggering FetchAll. No diffing
// and no optimistic insertion happen here; the newly created record only
// becomes visible once the refetch completes.
func (s *AppointmentStore) Invalidate(ctx context.Context) error {
	_, err := s.FetchAll(ctx)
	return err
}

// Snapshot returns a copy of the held list, the error flag from the last
// fetch, and whether any fetch has happened yet.
func (s *AppointmentStore) Snapshot() ([]models.Appointment, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Appointment(nil), s.appointments...), s.fetchFailed, s.loaded
}
