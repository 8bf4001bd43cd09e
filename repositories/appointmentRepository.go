package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

const appointmentsPath = "/api/appointments/"

// AppointmentRepository reads and creates appointment records in the record
// store.
type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// GetAll fetches the appointment collection and normalizes every record.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	data, err := database.Store.GetList(ctx, appointmentsPath)
	if err != nil {
		return nil, err
	}
	appointments, err := models.DecodeAppointments(data)
	if err != nil {
		return nil, errors.Wrapf(database.ErrFetch, "%v", err)
	}
	return appointments, nil
}

// Create posts a new appointment record and returns the created record body.
func (r *AppointmentRepository) Create(ctx context.Context, payload models.CreateAppointment) (json.RawMessage, error) {
	return database.Store.PostJSON(ctx, appointmentsPath, payload)
}
