package repositories

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
)

const patientsPath = "/api/patients/"

// PatientRepository reads and creates patient records in the record store.
type PatientRepository struct{}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{}
}

// GetAll fetches the patient collection and normalizes every record. A body
// that fails to parse is reported as a fetch failure, the same as a network
// or status error.
func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	data, err := database.Store.GetList(ctx, patientsPath)
	if err != nil {
		return nil, err
	}
	patients, err := models.DecodePatients(data)
	if err != nil {
		return nil, errors.Wrapf(database.ErrFetch, "%v", err)
	}
	return patients, nil
}

// Create posts a new patient record and returns the created record body.
func (r *PatientRepository) Create(ctx context.Context, payload models.CreatePatient) (json.RawMessage, error) {
	return database.Store.PostJSON(ctx, patientsPath, payload)
}
