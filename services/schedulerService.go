package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

// Option is a value/label pair for a selection input. Reference lists are
// served as plain data instead of anything widget-specific.
type Option struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// ReferenceLists holds the selector options for the scheduling form.
type ReferenceLists struct {
	Patients []Option `json:"patients"`
	Doctors  []Option `json:"doctors"`
	Types    []string `json:"types"`
}

// AppointmentTypes is the catalogue offered by the scheduling form; type
// remains free text on submission.
var AppointmentTypes = []string{"Consultation", "Follow-up", "Checkup", "Surgery", "Emergency"}

// SchedulerService runs the appointment creation workflow: load reference
// lists, validate the draft, submit it, then signal the store to refresh.
type SchedulerService struct {
	patients     *repositories.PatientRepository
	doctors      *repositories.DoctorRepository
	appointments *repositories.AppointmentRepository
	onScheduled  func(ctx context.Context) error
}

func NewSchedulerService(
	patients *repositories.PatientRepository,
	doctors *repositories.DoctorRepository,
	appointments *repositories.AppointmentRepository,
	onScheduled func(ctx context.Context) error,
) *SchedulerService {
	return &SchedulerService{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		onScheduled:  onScheduled,
	}
}

// LoadReferenceLists fetches the patient and doctor lists fresh for each
// call. A failed fetch leaves that selector empty rather than blocking the
// form; the failure is logged and swallowed here.
func (s *SchedulerService) LoadReferenceLists(ctx context.Context) ReferenceLists {
	lists := ReferenceLists{Patients: []Option{}, Doctors: []Option{}, Types: AppointmentTypes}

	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		log.Printf("Reference list fetch for patients failed: %v", err)
	}
	for _, patient := range patients {
		lists.Patients = append(lists.Patients, Option{Value: patient.ID, Label: patient.DisplayName})
	}

	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		log.Printf("Reference list fetch for doctors failed: %v", err)
	}
	for _, doctor := range doctors {
		lists.Doctors = append(lists.Doctors, Option{Value: doctor.ID, Label: doctor.DisplayName})
	}
	return lists
}

// Schedule validates the draft and submits it to the appointment collection.
// Validation failures return before any network call. On success the
// completion callback runs (wired to the appointment store's Invalidate) and
// the created record body is returned; on submit failure the caller keeps
// the draft so nothing the user entered is lost.
func (s *SchedulerService) Schedule(ctx context.Context, draft models.AppointmentDraft) (json.RawMessage, error) {
	if err := utils.ValidateAppointmentDraft(draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = models.StatusPending
	}

	created, err := s.appointments.Create(ctx, models.CreateAppointment{
		Patient:     draft.Patient,
		Doctor:      draft.Doctor,
		ScheduledAt: draft.Date + "T" + draft.Time,
		Type:        draft.Type,
		Status:      draft.Status,
		Reason:      draft.Notes,
	})
	if err != nil {
		return nil, err
	}

	if s.onScheduled != nil {
		if err := s.onScheduled(ctx); err != nil {
			// The create itself succeeded; the stale view resolves on the
			// next explicit refresh.
			log.Printf("Post-create refresh failed: %v", err)
		}
	}
	return created, nil
}
